// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Row is a remote record: a flat header→value mapping owned by the remote
// store. The identifier lives under the sheet's id column.
type Row map[string]string

// ID returns the identifier stored under idColumn.
func (r Row) ID(idColumn string) string {
	return strings.TrimSpace(r[idColumn])
}

// FindRow returns the first row whose identifier equals id. Row order is
// never relied upon beyond "first match".
func FindRow(rows []Row, idColumn, id string) (Row, bool) {
	if id == "" {
		return nil, false
	}
	for _, row := range rows {
		if row.ID(idColumn) == id {
			return row, true
		}
	}
	return nil, false
}
