// Package process stops a headless browser together with the helper
// processes it spawned.
package process

// KillTree kills pid and its descendants. Non-positive PIDs are ignored so a
// launcher that never started cannot signal our own process group.
// Errors are dropped: callers follow up with the launcher's own Kill.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	killTree(pid)
}
