/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package opts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Options struct {
	Passes []string `yaml:"passes"`
	Strict bool     `yaml:"strict"`
	Debug  bool     `yaml:"debug"`
}

func GetDefaultOptions() Options {
	return Options{
		Passes: append([]string(nil), Passes...),
		Strict: Strict,
		Debug:  Debug,
	}
}

// LoadFile reads options from a YAML file. Keys that are absent from the
// file keep their default values.
func LoadFile(path string) (Options, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	return Load(buf)
}

func Load(buf []byte) (Options, error) {
	ret := GetDefaultOptions()
	if err := yaml.Unmarshal(buf, &ret); err != nil {
		return Options{}, fmt.Errorf("tacopt: invalid options: %w", err)
	}
	for _, v := range ret.Passes {
		if v == "" {
			return Options{}, fmt.Errorf("tacopt: invalid options: empty pass name")
		}
	}
	return ret, nil
}
