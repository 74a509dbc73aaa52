package main

import "testing"

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"list", []string{"--list"}, false},
		{"help", []string{"--help"}, false},
		{"unknown flag", []string{"--bogus"}, true},
		{"unknown host", []string{"--host", "teletype", "--log-level", "panic"}, true},
		{"bad fov", []string{"--fov", "0", "--log-level", "panic"}, true},
		{"missing map", []string{"--host", "terminal", "--map", "builtin:void", "--log-level", "panic"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("run(%v) = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}
