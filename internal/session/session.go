// Package session drives one interactive editing session: transfer the
// zone, render it to a temp file, hand it to the editor, diff the edited
// text against the live state, let the operator review the resulting
// update script, submit it and start over if asked.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/zonevi/zonevi/internal/editor"
	"github.com/zonevi/zonevi/internal/history"
	"github.com/zonevi/zonevi/internal/nsupdate"
	"github.com/zonevi/zonevi/internal/zone"
)

// Transport moves records between the live zone and the session: Fetch
// pulls the zone as text lines, Apply submits a reviewed diff. The
// store and after-snapshot arguments let record-set based transports
// rebuild whole sets from the diff.
type Transport interface {
	Fetch(ctx context.Context, zoneName string) ([]string, error)
	Apply(ctx context.Context, zoneName string, ops []zone.Op, state *zone.Store, after zone.Snapshot) error
}

// Editor blocks while the operator edits the file at path.
type Editor interface {
	Edit(path string) error
}

// Session is one editing session over one zone.
type Session struct {
	ZoneName  string
	Transport Transport
	Editor    Editor
	History   *history.Log // nil disables the audit log

	// Server and Port only label the review script; the Transport
	// decides where changes actually go.
	Server string
	Port   int

	In  io.Reader // operator answers, normally the terminal
	Out io.Writer // listings, scripts and prompts
}

// Run executes the session until the operator quits, nothing is left to
// submit, or an error makes continuing pointless.
func (s *Session) Run(ctx context.Context) error {
	store := zone.NewStore()

	lines, err := s.Transport.Fetch(ctx, s.ZoneName)
	if err != nil {
		return err
	}

	serial := 1
	before := snapshot(serial)

	count, err := store.Load(s.ZoneName, before, strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		return err
	}

	if count == 0 {
		return errors.Wrapf(ErrEmptyZone, "zone %s", s.ZoneName)
	}

	log.Info().Str("zone", s.ZoneName).Int("records", count).Msg("zone loaded")

	path, cleanup, err := s.writeZoneFile(store, before)
	if err != nil {
		return err
	}
	defer cleanup()

	in := bufio.NewReader(s.In)

	for {
		if err := s.Editor.Edit(path); err != nil {
			return err
		}

		serial++
		after := snapshot(serial)

		count, err := s.loadEdited(store, after, path)
		if err != nil {
			return err
		}

		if count == 0 {
			log.Warn().Str("zone", s.ZoneName).Msg("edited file contains no records; submitting would empty the zone")
		}

		ops := store.Diff(s.ZoneName, before, after)
		if len(ops) == 0 {
			fmt.Fprintln(s.Out, "No changes.")
			return nil
		}

		script := nsupdate.Script(s.ZoneName, s.Server, s.Port, ops)
		fmt.Fprintln(s.Out, script)

		switch s.prompt(in, "Apply these changes? [y]es, [e]dit again, [q]uit: ") {
		case "y", "yes":
			if err := s.Transport.Apply(ctx, s.ZoneName, ops, store, after); err != nil {
				log.Error().Err(err).Str("zone", s.ZoneName).Msg("submission failed")

				if s.prompt(in, "Submission failed. [e]dit again, [q]uit: ") == "e" {
					continue
				}

				return err
			}

			s.record(script, ops)

			store.Prune(before)
			before = after

			if s.prompt(in, "Zone updated. [e]dit again, [q]uit: ") == "e" {
				continue
			}

			return nil
		case "e", "edit":
			continue
		default:
			fmt.Fprintln(s.Out, "Aborted, no changes submitted.")
			return nil
		}
	}
}

// writeZoneFile renders the snapshot into a fresh temp file.
func (s *Session) writeZoneFile(store *zone.Store, snap zone.Snapshot) (string, func(), error) {
	path, cleanup, err := editor.TempFile(s.ZoneName)
	if err != nil {
		return "", nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		cleanup()
		return "", nil, errors.Wrap(err, "failed to write zone file")
	}

	if err := store.Render(f, s.ZoneName, snap); err != nil {
		_ = f.Close()
		cleanup()

		return "", nil, err
	}

	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, errors.Wrap(err, "failed to write zone file")
	}

	return path, cleanup, nil
}

// loadEdited files the edited zone text under the given snapshot.
func (s *Session) loadEdited(store *zone.Store, snap zone.Snapshot, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read edited zone file")
	}
	defer func() { _ = f.Close() }()

	return store.Load(s.ZoneName, snap, f)
}

// record appends the applied script to the history log, when enabled.
func (s *Session) record(script string, ops []zone.Op) {
	if s.History == nil {
		return
	}

	var adds, deletes int

	for _, op := range ops {
		if op.Action == zone.ActionAdd {
			adds++
		} else {
			deletes++
		}
	}

	err := s.History.Record(&history.ChangeSet{
		Zone:    s.ZoneName,
		Adds:    adds,
		Deletes: deletes,
		Script:  script,
	})
	if err != nil {
		// history is advisory; the zone change already happened
		log.Warn().Err(err).Str("zone", s.ZoneName).Msg("failed to record change set")
	}
}

func (s *Session) prompt(in *bufio.Reader, question string) string {
	fmt.Fprint(s.Out, question)

	answer, err := in.ReadString('\n')
	if err != nil && answer == "" {
		return "q"
	}

	return strings.ToLower(strings.TrimSpace(answer))
}

func snapshot(serial int) zone.Snapshot {
	return zone.Snapshot(strconv.Itoa(serial))
}
