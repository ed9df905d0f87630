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

package operation

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/oplog"
	"github.com/walteh/renamerc/pkg/plan"
	"github.com/walteh/renamerc/pkg/report"
)

// 🚀 Apply performs the planned renames one by one, keeps going past
// individual failures, and drops the operation log into the target
// directory. Without confirmation it returns a cancelled log and the
// filesystem stays untouched.
func (o *operator) Apply(ctx context.Context, confirmed bool) (*oplog.Log, error) {
	log := zerolog.Ctx(ctx)
	l := oplog.New(o.dir, o.cfg, o.now())

	if !confirmed {
		l.Cancelled = true
		log.Info().Msg("apply declined, nothing modified")
		return l, nil
	}

	if o.user != nil && !o.plan.Empty() {
		o.user.LogStateChange(fmt.Sprintf("Applying %d renames in %s", len(o.plan.Items), o.dir))
	}

	for _, item := range o.plan.Items {
		if err := ctx.Err(); err != nil {
			return l, err
		}
		o.applyItem(ctx, l, item)
	}

	// Collisions were never attempted, but they still belong in the log
	// and they still count as failures.
	for _, c := range o.plan.Collisions {
		l.Add(c.Item, oplog.OutcomeFailed, c.Reason)
		o.userChange(report.ItemFailed, c.Item, c.Reason)
	}

	l.Applied = true

	if len(l.Records) > 0 {
		if _, err := l.Write(ctx); err != nil {
			// The renames already happened, so a missing log is only a warning.
			log.Warn().Err(err).Msg("could not write operation log")
		}
	}

	renamed, _, failed := l.Counts()
	log.Info().Int("renamed", renamed).Int("failed", failed).Msg("apply complete")

	return l, nil
}

// applyItem renames a single file, re-checking the destination right before
// the rename in case something appeared there since the scan.
func (o *operator) applyItem(ctx context.Context, l *oplog.Log, item plan.Item) {
	log := zerolog.Ctx(ctx)

	// Lstat catches dangling symlinks too, which os.Rename would clobber.
	if _, err := os.Lstat(item.NewPath()); err == nil {
		l.Add(item, oplog.OutcomeFailed, "destination exists")
		o.userChange(report.ItemFailed, item, "destination exists")
		log.Debug().Str("path", item.NewPath()).Msg("destination appeared after scan")
		return
	}

	if err := os.Rename(item.OriginalPath(), item.NewPath()); err != nil {
		reason := renameReason(err)
		l.Add(item, oplog.OutcomeFailed, reason)
		o.userChange(report.ItemFailed, item, reason)
		log.Debug().Err(err).Str("path", item.OriginalPath()).Msg("rename failed")
		return
	}

	l.Add(item, oplog.OutcomeRenamed, "")
	o.userChange(report.ItemRenamed, item, "")
}

func (o *operator) userChange(t report.ItemChangeType, item plan.Item, reason string) {
	if o.user == nil {
		return
	}
	o.user.LogItemChange(report.ItemChange{Type: t, Item: item, Reason: reason})
}

// renameReason turns a rename error into the short phrase used in the log.
func renameReason(err error) string {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		err = linkErr.Err
	}
	switch {
	case errors.Is(err, os.ErrPermission):
		return "permission denied"
	case errors.Is(err, os.ErrNotExist):
		return "source no longer exists"
	default:
		return err.Error()
	}
}
