package process

// Notes:
// - Real termination is exercised by the PDF exporter when Chrome is present.
//   Unit tests only cover PIDs that must never be signalled or do not exist.

import "testing"

func TestKillTree_IgnoresNonPositive(t *testing.T) {
	t.Parallel()

	// Would target our own process group if not guarded.
	KillTree(0)
	KillTree(-1)
}

func TestKillTree_MissingPID(t *testing.T) {
	t.Parallel()

	KillTree(999999999)
}
