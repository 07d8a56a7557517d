package database

import (
	"testing"
	"time"
)

func TestPoolWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Pool
		want Pool
	}{
		{
			"zero value gets defaults",
			Pool{},
			Pool{MaxOpenConns: 25, MaxIdleConns: 5, ConnMaxLifetime: 30 * time.Minute},
		},
		{
			"explicit values kept",
			Pool{MaxOpenConns: 100, MaxIdleConns: 10, ConnMaxLifetime: time.Hour},
			Pool{MaxOpenConns: 100, MaxIdleConns: 10, ConnMaxLifetime: time.Hour},
		},
		{
			"partial config fills the rest",
			Pool{MaxOpenConns: 50},
			Pool{MaxOpenConns: 50, MaxIdleConns: 5, ConnMaxLifetime: 30 * time.Minute},
		},
		{
			"negative values treated as unset",
			Pool{MaxOpenConns: -1, MaxIdleConns: -1, ConnMaxLifetime: -time.Minute},
			Pool{MaxOpenConns: 25, MaxIdleConns: 5, ConnMaxLifetime: 30 * time.Minute},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.withDefaults(); got != tt.want {
				t.Errorf("withDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
