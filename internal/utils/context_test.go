// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorCtxKey_String(t *testing.T) {
	assert.Equal(t, "go-sheet-sync/operator", OperatorCtxKey.String())
}

func TestOperatorCtxKey_DoesNotCollideWithPlainString(t *testing.T) {
	type foreignKey string
	ctx := context.WithValue(context.Background(), foreignKey("operator"), "intruder")

	_, ok := GetOperatorFromContext(ctx)
	assert.False(t, ok)
}

func TestGetOperatorFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{"missing", context.Background(), "", false},
		{"wrong type", context.WithValue(context.Background(), OperatorCtxKey, 42), "", false},
		{"empty", context.WithValue(context.Background(), OperatorCtxKey, ""), "", false},
		{"present", context.WithValue(context.Background(), OperatorCtxKey, "ops@bank"), "ops@bank", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetOperatorFromContext(tt.ctx)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
