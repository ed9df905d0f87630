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

// Package operation executes rename plans against the filesystem.
package operation

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/oplog"
	"github.com/walteh/renamerc/pkg/plan"
	"github.com/walteh/renamerc/pkg/report"
)

// 🎯 Operator defines the main interface for rename runs
type Operator interface {
	// Preview records what would happen without touching any file
	Preview(ctx context.Context) (*oplog.Log, error)
	// Apply performs the planned renames and writes the operation log
	Apply(ctx context.Context, confirmed bool) (*oplog.Log, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the effective run configuration
	Config *config.Config
	// Plan is the set of renames to perform
	Plan *plan.Plan
	// Dir is the target directory, which also receives the operation log
	Dir string
	// Now supplies the run timestamp, defaulting to time.Now
	Now func() time.Time
	// UserLogger receives per-item feedback during apply, may be nil
	UserLogger *report.UserLogger
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Plan == nil {
		return nil, errors.Errorf("plan is required")
	}
	if opts.Dir == "" {
		return nil, errors.Errorf("target directory is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &operator{
		cfg:  opts.Config,
		plan: opts.Plan,
		dir:  opts.Dir,
		now:  opts.Now,
		user: opts.UserLogger,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	cfg  *config.Config
	plan *plan.Plan
	dir  string
	now  func() time.Time
	user *report.UserLogger
}

// 🔍 Preview records every planned rename as skipped and every collision as
// failed, without touching the filesystem or writing a log file.
func (o *operator) Preview(ctx context.Context) (*oplog.Log, error) {
	l := oplog.New(o.dir, o.cfg, o.now())

	for _, item := range o.plan.Items {
		l.Add(item, oplog.OutcomeSkipped, "")
	}
	for _, c := range o.plan.Collisions {
		l.Add(c.Item, oplog.OutcomeFailed, c.Reason)
	}

	zerolog.Ctx(ctx).Debug().
		Int("items", len(o.plan.Items)).
		Int("collisions", len(o.plan.Collisions)).
		Msg("preview complete")

	return l, nil
}
