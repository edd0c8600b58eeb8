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
	"os"
	"strconv"
	"strings"
)

var _DefaultPasses = []string{"constprop"}

var (
	Debug  = parseBoolOrDefault("TACOPT_DEBUG", false)
	Strict = parseBoolOrDefault("TACOPT_STRICT", false)
	Passes = parseListOrDefault("TACOPT_PASSES", _DefaultPasses)
)

func parseBoolOrDefault(key string, def bool) bool {
	if env := os.Getenv(key); env == "" {
		return def
	} else if val, err := strconv.ParseBool(env); err != nil {
		panic("tacopt: invalid value for " + key)
	} else {
		return val
	}
}

func parseListOrDefault(key string, def []string) []string {
	if env := os.Getenv(key); env == "" {
		return def
	} else {
		return parseList(key, env)
	}
}

func parseList(key string, env string) []string {
	ret := strings.Split(env, ",")
	for i, v := range ret {
		if ret[i] = strings.TrimSpace(v); ret[i] == "" {
			panic("tacopt: empty item in " + key)
		}
	}
	return ret
}
