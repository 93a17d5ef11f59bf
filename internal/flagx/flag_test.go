package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// configFlags and databaseFlags mirror the flag sets hotelres parses from
// the same command line.
var (
	configFlags   = []string{"-c", "-config"}
	databaseFlags = []string{"-b", "-d", "-o"}
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "config path picked from mixed command line",
			args:    []string{"-l", "debug", "-c", "/etc/hotelres.json", "-e", "admin@hotel.local"},
			allowed: configFlags,
			want:    []string{"-c", "/etc/hotelres.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=/etc/hotelres.json", "-b", "sqlite"},
			allowed: configFlags,
			want:    []string{"-config=/etc/hotelres.json"},
		},
		{
			name:    "postgres dsn with equals signs stays one value",
			args:    []string{"-b", "pgx", "-d", "postgres://u:p@db/hotel?sslmode=disable", "-c", "x.json"},
			allowed: databaseFlags,
			want:    []string{"-b", "pgx", "-d", "postgres://u:p@db/hotel?sslmode=disable"},
		},
		{
			name:    "equals form keeps dash-leading value",
			args:    []string{"-o=-5"},
			allowed: databaseFlags,
			want:    []string{"-o=-5"},
		},
		{
			name:    "dash-leading token is not a value",
			args:    []string{"-o", "-5"},
			allowed: databaseFlags,
			want:    []string{"-o"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-l", "info", "-d"},
			allowed: databaseFlags,
			want:    []string{"-d"},
		},
		{
			name:    "repeated flag kept in order so the last wins",
			args:    []string{"-b", "sqlite", "-b", "pgx"},
			allowed: databaseFlags,
			want:    []string{"-b", "sqlite", "-b", "pgx"},
		},
		{
			name:    "only foreign flags",
			args:    []string{"-t", "3", "-m", "65536", "positional"},
			allowed: configFlags,
			want:    []string{},
		},
		{
			name:    "no args",
			args:    []string{},
			allowed: configFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{name: "short flag", args: []string{"hotelres", "-c", "/etc/hotelres.json"}, want: "/etc/hotelres.json"},
		{name: "long flag", args: []string{"hotelres", "-config", "./hotelres.json"}, want: "./hotelres.json"},
		{name: "last flag wins", args: []string{"hotelres", "-c", "a.json", "-config", "b.json"}, want: "b.json"},
		{name: "env fallback", args: []string{"hotelres", "-l", "debug"}, env: "/srv/hotelres.json", want: "/srv/hotelres.json"},
		{name: "flag beats env", args: []string{"hotelres", "-c", "flag.json"}, env: "/srv/hotelres.json", want: "flag.json"},
		{name: "nothing configured", args: []string{"hotelres", "-b", "sqlite"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigEnvVar, tt.env)
			os.Args = tt.args
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
