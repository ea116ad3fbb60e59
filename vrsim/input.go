// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrsim

import (
	"strings"
	"sync"

	"github.com/gogpu/vroverlay/vr"
)

type digitalKey struct {
	action vr.ActionHandle
	source vr.InputValueHandle
}

// DigitalQuery records one DigitalActionData call.
type DigitalQuery struct {
	Action vr.ActionHandle
	Source vr.InputValueHandle
}

// Input is a simulated vr.InputAPI. Paths are registered on first use and
// resolve to stable non-zero handles.
type Input struct {
	mu sync.Mutex

	manifest string
	next     uint64
	handles  map[string]uint64
	digital  map[digitalKey]vr.DigitalActionData
	fail     map[string]vr.InputError

	updates []vr.ActiveActionSet
	queries []DigitalQuery
}

// NewInput creates an empty Input.
func NewInput() *Input {
	return &Input{
		handles: make(map[string]uint64),
		digital: make(map[digitalKey]vr.DigitalActionData),
		fail:    make(map[string]vr.InputError),
	}
}

// Fail makes the method named op (for example "UpdateActionState") return
// code until called again with vr.InputErrorNone.
func (in *Input) Fail(op string, code vr.InputError) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if code == vr.InputErrorNone {
		delete(in.fail, op)
		return
	}
	in.fail[op] = code
}

// Handle returns the handle of path, registering it if needed.
func (in *Input) Handle(path string) uint64 {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.handle(path)
}

func (in *Input) handle(path string) uint64 {
	if h, ok := in.handles[path]; ok {
		return h
	}
	in.next++
	in.handles[path] = in.next
	return in.next
}

// SetDigital sets the data returned for action restricted to source. An
// empty source sets the unrestricted (any device) result.
func (in *Input) SetDigital(action, source string, data vr.DigitalActionData) {
	in.mu.Lock()
	defer in.mu.Unlock()
	key := digitalKey{action: vr.ActionHandle(in.handle(action))}
	if source != "" {
		key.source = vr.InputValueHandle(in.handle(source))
	}
	in.digital[key] = data
}

// Manifest returns the last action manifest path set.
func (in *Input) Manifest() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.manifest
}

// Updates returns every action set passed to UpdateActionState.
func (in *Input) Updates() []vr.ActiveActionSet {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]vr.ActiveActionSet(nil), in.updates...)
}

// Queries returns the recorded DigitalActionData calls.
func (in *Input) Queries() []DigitalQuery {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]DigitalQuery(nil), in.queries...)
}

func (in *Input) failure(op string) error {
	if code, ok := in.fail[op]; ok {
		return code
	}
	return nil
}

// SetActionManifestPath implements vr.InputAPI.
func (in *Input) SetActionManifestPath(path string) error {
	in.mu.Lock()
	defer in.mu.Unlock()
	if err := in.failure("SetActionManifestPath"); err != nil {
		return err
	}
	if path == "" {
		return vr.InputErrorInvalidParam
	}
	in.manifest = path
	return nil
}

func (in *Input) named(op, name, prefix string) (uint64, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if err := in.failure(op); err != nil {
		return 0, err
	}
	if !strings.HasPrefix(name, prefix) {
		return 0, vr.InputErrorNameNotFound
	}
	return in.handle(name), nil
}

// ActionSetHandle implements vr.InputAPI. Names must start with /actions/.
func (in *Input) ActionSetHandle(name string) (vr.ActionSetHandle, error) {
	h, err := in.named("ActionSetHandle", name, "/actions/")
	return vr.ActionSetHandle(h), err
}

// ActionHandle implements vr.InputAPI. Names must start with /actions/.
func (in *Input) ActionHandle(name string) (vr.ActionHandle, error) {
	h, err := in.named("ActionHandle", name, "/actions/")
	return vr.ActionHandle(h), err
}

// InputSourceHandle implements vr.InputAPI. Paths must start with /user/.
func (in *Input) InputSourceHandle(path string) (vr.InputValueHandle, error) {
	h, err := in.named("InputSourceHandle", path, "/user/")
	return vr.InputValueHandle(h), err
}

// UpdateActionState implements vr.InputAPI.
func (in *Input) UpdateActionState(sets []vr.ActiveActionSet) error {
	in.mu.Lock()
	defer in.mu.Unlock()
	if err := in.failure("UpdateActionState"); err != nil {
		return err
	}
	if len(sets) == 0 {
		return vr.InputErrorNoActiveActionSet
	}
	in.updates = append(in.updates, sets...)
	return nil
}

// DigitalActionData implements vr.InputAPI. Unset combinations report an
// inactive action.
func (in *Input) DigitalActionData(action vr.ActionHandle, restrictToDevice vr.InputValueHandle) (vr.DigitalActionData, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.queries = append(in.queries, DigitalQuery{Action: action, Source: restrictToDevice})
	if err := in.failure("DigitalActionData"); err != nil {
		return vr.DigitalActionData{}, err
	}
	if action == vr.InvalidActionHandle {
		return vr.DigitalActionData{}, vr.InputErrorInvalidHandle
	}
	return in.digital[digitalKey{action: action, source: restrictToDevice}], nil
}
