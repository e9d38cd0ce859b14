// Package platform classifies operating-system filesystem errors into the
// categories the scaffold generator reports: permission denied and storage
// exhaustion (disk full or quota exceeded).
package platform
