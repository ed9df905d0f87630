// Copyright 2025 walteh LLC
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

package plan

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/scan"
)

// 📄 Item is one planned rename inside a single directory.
type Item struct {
	Dir          string `json:"dir"`
	OriginalName string `json:"original_name"`
	NewName      string `json:"new_name"`
}

// OriginalPath returns the full path of the file before renaming.
func (i Item) OriginalPath() string {
	return filepath.Join(i.Dir, i.OriginalName)
}

// NewPath returns the full path of the file after renaming.
func (i Item) NewPath() string {
	return filepath.Join(i.Dir, i.NewName)
}

// ⚠️ Collision is a rename that cannot run because its target name is taken,
// either by a file already on disk or by an earlier item in the same plan.
type Collision struct {
	Item
	Reason string `json:"reason"`
}

// 📦 Plan is the complete, ordered set of decisions for one run.
type Plan struct {
	Items        []Item
	Collisions   []Collision
	AlreadyClean int
}

// ToRename counts every file whose name would change, collisions included.
func (p *Plan) ToRename() int {
	return len(p.Items) + len(p.Collisions)
}

// Empty reports whether nothing in the scan needs renaming.
func (p *Plan) Empty() bool {
	return p.ToRename() == 0
}

// 🏗️ Build turns scan results into a plan. Entries arrive in deterministic
// (directory, name) order and claims are granted first come first served:
// when two files map to the same new name, the first keeps it and the rest
// become collisions. Targets are also checked against every name the scan
// saw in that directory, including hidden files and subdirectories.
func Build(ctx context.Context, res *scan.Result, cfg *config.Config) *Plan {
	p := &Plan{}
	claimed := map[string]map[string]string{} // dir -> new name -> claiming original

	for _, entry := range res.Entries {
		newName := Transform(entry.Name, cfg)
		if newName == entry.Name {
			p.AlreadyClean++
			continue
		}

		item := Item{Dir: entry.Dir, OriginalName: entry.Name, NewName: newName}

		if res.Exists(entry.Dir, newName) {
			p.Collisions = append(p.Collisions, Collision{Item: item, Reason: "destination exists"})
			continue
		}
		if owner, ok := claimed[entry.Dir][newName]; ok {
			p.Collisions = append(p.Collisions, Collision{
				Item:   item,
				Reason: fmt.Sprintf("same target as '%s'", owner),
			})
			continue
		}

		names, ok := claimed[entry.Dir]
		if !ok {
			names = map[string]string{}
			claimed[entry.Dir] = names
		}
		names[newName] = entry.Name
		p.Items = append(p.Items, item)
	}

	zerolog.Ctx(ctx).Debug().
		Int("to_rename", len(p.Items)).
		Int("collisions", len(p.Collisions)).
		Int("already_clean", p.AlreadyClean).
		Msg("plan built")

	return p
}
