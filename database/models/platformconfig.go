// Copyright 2025 Rentledger Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package models

// PlatformConfig is a single-row table holding administrator-settable
// platform parameters
type PlatformConfig struct {
	ID         uint `gorm:"primarykey"`
	FeeRateBps uint
}

func (PlatformConfig) TableName() string {
	return "platform_config"
}
