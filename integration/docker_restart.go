//go:build integration

package integration

import (
	"context"
	"os/exec"
	"testing"
)

func restartBookstoreContainer(t *testing.T, ctx context.Context) {
	t.Helper()

	cmd := exec.CommandContext(ctx, "docker", "compose", "restart", "bookstore")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("docker compose restart bookstore failed: %v\n%s", err, string(out))
	}
}
