// Copyright 2024 Upbound Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rules

import (
	"strconv"

	"github.com/meshlint/meshlint/internal/model"
)

func metaString(c *model.Component, name string) (string, bool) {
	m, ok := c.Metadata(name)
	if !ok || !m.HasValue() {
		return "", false
	}
	return *m.Value, true
}

func metaInt(c *model.Component, name string) (int64, bool) {
	s, ok := metaString(c, name)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func metaIntPresentButInvalid(c *model.Component, name string) bool {
	s, ok := metaString(c, name)
	if !ok {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err != nil
}
