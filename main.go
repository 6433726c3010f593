package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"github.com/charmbracelet/log"

	"github.com/moarsenal/arsenal/internal/catalog"
	"github.com/moarsenal/arsenal/internal/config"
	"github.com/moarsenal/arsenal/internal/platform"
	"github.com/moarsenal/arsenal/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.moarsenal.arsenal"
	AppName = "MO Arsenal"

	HierarchyFileName = "arsenal_hierarchy.yaml"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "arsenal"})
	logger.Info("starting", "version", version)

	myApp := app.NewWithID(AppID)

	settings := config.Load(platform.SettingsPath(config.SettingsFileName))
	myApp.Settings().SetTheme(ui.NewArsenalTheme(settings))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(
		float32(settings.Custom.WindowWidth),
		float32(settings.Custom.WindowHeight)))

	dataDir := platform.DataDir()
	hierarchy, err := catalog.LoadHierarchyOrDefault(platform.SettingsPath(HierarchyFileName))
	if err != nil {
		logger.Warn("ignoring broken hierarchy file", "err", err)
		hierarchy = catalog.DefaultHierarchy()
	}

	cat, err := catalog.Load(dataDir, hierarchy, logger)
	if err != nil {
		logger.Error("data directory unavailable", "dir", dataDir, "err", err)
		dialog.ShowError(fmt.Errorf("data directory %q not found; place the extracted "+
			"data tree next to the executable or set %s", dataDir, platform.DataDirEnvVar),
			myWindow)
		cat = catalog.NewCatalog(hierarchy)
	}
	logger.Info("catalog loaded", "units", cat.Len(), "dir", dataDir)

	index := catalog.NewIndex(cat)
	icons := ui.NewIconCache(dataDir)

	ui.NewRootUI(myWindow, myApp, settings, cat, index, icons)

	myWindow.ShowAndRun()
}
