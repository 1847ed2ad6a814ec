package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	type want struct {
		runAddress  string
		storeFile   string
		unreadClamp bool
	}

	tests := []struct {
		name  string
		env   map[string]string
		flags []string
		want  want
	}{
		{
			name:  "defaults",
			env:   map[string]string{},
			flags: []string{},
			want: want{
				runAddress: "localhost:8080",
				storeFile:  "dashboard-store.json",
			},
		},
		{
			name: "env only",
			env: map[string]string{
				"RUN_ADDRESS":  "localhost:9999",
				"STORE_FILE":   "/var/lib/dashboard/state.json",
				"UNREAD_CLAMP": "true",
			},
			flags: []string{},
			want: want{
				runAddress:  "localhost:9999",
				storeFile:   "/var/lib/dashboard/state.json",
				unreadClamp: true,
			},
		},
		{
			name: "flags only",
			env:  map[string]string{},
			flags: []string{
				"-a", "localhost:7777",
				"-f", "flag-store.json",
				"-c",
			},
			want: want{
				runAddress:  "localhost:7777",
				storeFile:   "flag-store.json",
				unreadClamp: true,
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"RUN_ADDRESS":  "env:9000",
				"STORE_FILE":   "env-store.json",
				"UNREAD_CLAMP": "false",
			},
			flags: []string{
				"-a", "flag:8000",
				"-f", "flag-store.json",
				"-c",
			},
			want: want{
				runAddress:  "env:9000",
				storeFile:   "env-store.json",
				unreadClamp: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			os.Args = append([]string{"test"}, tt.flags...)

			cfg, err := Parse()
			require.NoError(t, err)

			assert.Equal(t, tt.want.runAddress, cfg.RunAddress)
			assert.Equal(t, tt.want.storeFile, cfg.StoreFile)
			assert.Equal(t, tt.want.unreadClamp, cfg.UnreadClamp)
		})
	}
}
