package quickquery

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParams(t *testing.T) {
	tests := []struct {
		name    string
		kv      []any
		want    Parameters
		wantErr error
	}{
		{
			name: "no arguments",
			kv:   nil,
			want: Parameters{},
		},
		{
			name: "pairs",
			kv:   []any{"id", 5, "name", "alice"},
			want: Parameters{"id": 5, "name": "alice"},
		},
		{
			name: "leading at sign is trimmed",
			kv:   []any{"@id", 5},
			want: Parameters{"id": 5},
		},
		{
			name: "nil value",
			kv:   []any{"deleted_at", nil},
			want: Parameters{"deleted_at": nil},
		},
		{
			name:    "odd number of arguments",
			kv:      []any{"id", 5, "name"},
			wantErr: ErrOddParameters,
		},
		{
			name:    "non string name",
			kv:      []any{1, 5},
			wantErr: ErrInvalidParameterName,
		},
		{
			name:    "empty name",
			kv:      []any{"@", 5},
			wantErr: ErrInvalidParameterName,
		},
		{
			name:    "duplicate name",
			kv:      []any{"id", 5, "@id", 6},
			wantErr: ErrDuplicateParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Params(tt.kv...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error to be %v, got: %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Params() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustParams(t *testing.T) {
	params := MustParams("id", 1)
	if params["id"] != 1 {
		t.Errorf("expected id to be 1, got %v", params["id"])
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for odd arguments")
		}
		if !strings.Contains(r.(error).Error(), ErrOddParameters.Error()) {
			t.Errorf("unexpected panic: %v", r)
		}
	}()
	_ = MustParams("id")
}
