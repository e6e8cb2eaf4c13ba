package app

import (
	"testing"

	"termctl/internal/session"
	"termctl/internal/store"
	tu "termctl/internal/testutil"
)

func TestRestoreLocal_SettingsOnlyStateApplies(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)() // fallback

	// `termctl settings` on a fresh install writes a record with no tabs
	s := session.DefaultSettings()
	s.Theme = session.ThemeSolarized
	store.SaveLocal(store.LocalState{Settings: s})

	mgr := session.NewManager(nil)
	restoreLocal(mgr)

	if mgr.Settings().Theme != session.ThemeSolarized {
		t.Fatalf("settings-only state dropped: %+v", mgr.Settings())
	}
	if len(mgr.Tabs()) != 1 {
		t.Fatalf("default tab must survive a tab-less restore: %d", len(mgr.Tabs()))
	}
}

func TestRestoreLocal_ClearsRunningFlags(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	// an auto-save can catch a tab mid-command
	prev := session.NewManager(nil)
	prev.SetRunning(prev.ActiveTab().ID, true)
	store.SaveLocal(store.LocalState{Tabs: prev.Tabs(), Settings: prev.Settings()})

	mgr := session.NewManager(nil)
	restoreLocal(mgr)

	for _, tab := range mgr.Tabs() {
		if tab.IsRunning {
			t.Fatalf("tab %q restored as running", tab.Name)
		}
	}
}

func TestRestoreLocal_NoStateKeepsDefaults(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	mgr := session.NewManager(nil)
	restoreLocal(mgr)

	if len(mgr.Tabs()) != 1 || mgr.Settings() != session.DefaultSettings() {
		t.Fatalf("expected untouched defaults: %+v", mgr.Settings())
	}
}
