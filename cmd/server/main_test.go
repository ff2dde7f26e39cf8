package main

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_BadConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	assert.Equal(t, 1, run(make(chan os.Signal)))
}

func TestRun_StartsAndShutsDown(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "blog.sqlite"))
	t.Setenv("PORT", "0")
	t.Setenv("LOG_LEVEL", "error")

	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM

	assert.Equal(t, 0, run(quit))
}
