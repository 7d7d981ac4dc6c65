package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitaran/vitaran/pkg/plans"
)

func TestBundleHasPages(t *testing.T) {
	fsys := FS()
	for _, name := range []string{
		"login.html",
		"register.html",
		"subscription.html",
		"dashboard.html",
		"reset.html",
		"css/style.css",
		"js/api.js",
		"js/dashboard.js",
	} {
		_, err := fs.Stat(fsys, name)
		require.NoError(t, err, name)
	}
}

func TestBundleHasPlatformLogos(t *testing.T) {
	fsys := FS()
	all, ok := plans.Lookup(plans.All)
	require.True(t, ok)
	for _, p := range all.Platforms {
		// LogoPath is absolute; the bundle is rooted at "/".
		_, err := fs.Stat(fsys, plans.LogoPath(p)[1:])
		require.NoError(t, err, p)
	}
}
