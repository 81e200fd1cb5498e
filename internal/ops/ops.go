// Copyright (C) 2025 Dyne.org foundation
// designed, written and maintained by Denis Roio <jaromil@dyne.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package ops defines the operations the interpreter understands, the group
// each one belongs to, and the static rules shared by validation and building.
package ops

import "sort"

// Group tags an operation with the validator family responsible for it.
type Group string

const (
	GroupFileOperation      Group = "file_operation"
	GroupFilePermission     Group = "file_permission"
	GroupDirectoryOperation Group = "directory_operation"
	GroupMeta               Group = "meta"
)

// Operation is a user-facing verb together with its group.
type Operation struct {
	Name  string
	Group Group
}

func (o Operation) String() string {
	return o.Name
}

// IsZero reports whether o is the zero Operation.
func (o Operation) IsZero() bool {
	return o.Name == ""
}

var (
	Create = Operation{Name: "create", Group: GroupFileOperation}
	Delete = Operation{Name: "delete", Group: GroupFileOperation}
	Rename = Operation{Name: "rename", Group: GroupFileOperation}

	Modify = Operation{Name: "modify", Group: GroupFilePermission}
	List   = Operation{Name: "list", Group: GroupFilePermission}

	Make   = Operation{Name: "make", Group: GroupDirectoryOperation}
	Remove = Operation{Name: "remove", Group: GroupDirectoryOperation}
	Change = Operation{Name: "change", Group: GroupDirectoryOperation}
	Pwd    = Operation{Name: "pwd", Group: GroupDirectoryOperation}

	Help = Operation{Name: "help", Group: GroupMeta}
)

var all = []Operation{Create, Delete, Rename, Modify, List, Make, Remove, Change, Pwd, Help}

var byName = func() map[string]Operation {
	m := make(map[string]Operation, len(all))
	for _, op := range all {
		m[op.Name] = op
	}
	return m
}()

// All returns every operation in declaration order.
func All() []Operation {
	return append([]Operation(nil), all...)
}

// Commands returns every operation except help.
func Commands() []Operation {
	out := make([]Operation, 0, len(all)-1)
	for _, op := range all {
		if op != Help {
			out = append(out, op)
		}
	}
	return out
}

// Lookup resolves an already case-normalized keyword.
func Lookup(name string) (Operation, bool) {
	op, ok := byName[name]
	return op, ok
}

// Names returns the sorted keyword list.
func Names() []string {
	names := make([]string, 0, len(all))
	for _, op := range all {
		names = append(names, op.Name)
	}
	sort.Strings(names)
	return names
}

// pipeSuccessors maps a left-hand operation to the only operation allowed on
// the right of a pipe.
var pipeSuccessors = map[Operation]Operation{
	Create: List,
	Delete: List,
	Rename: List,
	List:   Modify,
	Make:   List,
	Remove: List,
	Change: List,
}

// PipeSuccessor returns the required right-hand operation for left.
func PipeSuccessor(left Operation) (Operation, bool) {
	op, ok := pipeSuccessors[left]
	return op, ok
}
