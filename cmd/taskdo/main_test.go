package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectTaskLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"taskdo"},
			want: []string{"taskdo"},
		},
		{
			name: "direct id first token",
			in:   []string{"taskdo", "12"},
			want: []string{"taskdo", "tasks", "show", "12"},
		},
		{
			name: "direct id after value flag",
			in:   []string{"taskdo", "--api-url", "http://localhost:9000", "12"},
			want: []string{"taskdo", "--api-url", "http://localhost:9000", "tasks", "show", "12"},
		},
		{
			name: "direct id after equals flag",
			in:   []string{"taskdo", "--format=table", "12"},
			want: []string{"taskdo", "--format=table", "tasks", "show", "12"},
		},
		{
			name: "direct id after bool flag",
			in:   []string{"taskdo", "--pretty", "12"},
			want: []string{"taskdo", "--pretty", "tasks", "show", "12"},
		},
		{
			name: "direct id after double dash",
			in:   []string{"taskdo", "--", "12"},
			want: []string{"taskdo", "--", "tasks", "show", "12"},
		},
		{
			name: "numeric flag value is not an id",
			in:   []string{"taskdo", "--format", "7", "tasks", "list"},
			want: []string{"taskdo", "--format", "7", "tasks", "list"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"taskdo", "tasks", "show", "12"},
			want: []string{"taskdo", "tasks", "show", "12"},
		},
		{
			name: "non-positive id not rewritten",
			in:   []string{"taskdo", "0"},
			want: []string{"taskdo", "0"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"taskdo", "wat"},
			want: []string{"taskdo", "wat"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectTaskLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectTaskLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
