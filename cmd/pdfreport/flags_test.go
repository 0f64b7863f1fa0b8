package main

import (
	"errors"
	"reflect"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseGenerateFlags - Flag parsing and positional args
// ---------------------------------------------------------------------------

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		args           []string
		want           generateFlags
		wantPositional []string
	}{
		{
			name:           "report only",
			args:           []string{"annual"},
			wantPositional: []string{"annual"},
		},
		{
			name: "short flags",
			args: []string{"annual", "-o", "out", "-t", "10s", "-c", "work", "-q"},
			want: generateFlags{
				common:    commonFlags{config: "work", quiet: true},
				outputDir: "out",
				timeout:   "10s",
			},
			wantPositional: []string{"annual"},
		},
		{
			name: "long flags before report",
			args: []string{"--backend", "chrome", "--locale=en", "--verbose", "--html-only", "installation"},
			want: generateFlags{
				common:   commonFlags{verbose: true},
				backend:  "chrome",
				locale:   "en",
				htmlOnly: true,
			},
			wantPositional: []string{"installation"},
		},
		{
			name: "footer flags",
			args: []string{"annual", "--page-numbers", "--footer-text", "auto:report", "--doc-id", "auto"},
			want: generateFlags{
				footer: footerFlags{pageNumbers: true, text: "auto:report", documentID: "auto"},
			},
			wantPositional: []string{"annual"},
		},
		{
			name:           "no positional",
			args:           []string{"-v"},
			want:           generateFlags{common: commonFlags{verbose: true}},
			wantPositional: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, positional, err := parseGenerateFlags(tt.args)
			if err != nil {
				t.Fatalf("parseGenerateFlags(%v) unexpected error: %v", tt.args, err)
			}
			if *got != tt.want {
				t.Errorf("flags = %+v, want %+v", *got, tt.want)
			}
			if !reflect.DeepEqual(positional, tt.wantPositional) {
				t.Errorf("positional = %v, want %v", positional, tt.wantPositional)
			}
		})
	}
}

func TestParseGenerateFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "help", args: []string{"-h"}, wantErr: flag.ErrHelp},
		{name: "unknown flag", args: []string{"--workers", "4"}, wantErr: ErrUsage},
		{name: "missing value", args: []string{"annual", "-o"}, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := parseGenerateFlags(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("parseGenerateFlags(%v) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseDoctorFlags - JSON switch and config name
// ---------------------------------------------------------------------------

func TestParseDoctorFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantJSON   bool
		wantConfig string
		wantErr    error
	}{
		{name: "text", args: nil},
		{name: "json", args: []string{"--json"}, wantJSON: true},
		{name: "config", args: []string{"-c", "work", "--json"}, wantJSON: true, wantConfig: "work"},
		{name: "help", args: []string{"--help"}, wantErr: flag.ErrHelp},
		{name: "extra argument", args: []string{"now"}, wantErr: ErrUsage},
		{name: "unknown flag", args: []string{"--yaml"}, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotJSON, gotConfig, err := parseDoctorFlags(tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseDoctorFlags(%v) error = %v, want %v", tt.args, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDoctorFlags(%v) unexpected error: %v", tt.args, err)
			}
			if gotJSON != tt.wantJSON || gotConfig != tt.wantConfig {
				t.Errorf("parseDoctorFlags(%v) = %v, %q, want %v, %q", tt.args, gotJSON, gotConfig, tt.wantJSON, tt.wantConfig)
			}
		})
	}
}

func TestParseConfigFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "none", args: nil, want: ""},
		{name: "long", args: []string{"--config", "./work.yaml"}, want: "./work.yaml"},
		{name: "extra argument", args: []string{"show"}, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseConfigFlags(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseConfigFlags(%v) error = %v, want %v", tt.args, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseConfigFlags(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
