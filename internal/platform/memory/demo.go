package memory

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mj1618/uibridge/internal/model"
	"github.com/mj1618/uibridge/internal/platform"
)

const demoAppName = "QGIS"

// NewDemoApp builds a small GIS desktop: a main window with a toolbar, a
// layer list and a scale selector, plus a data source dialog opened from the
// toolbar. Opening the dialog and reporting invalid sources happen on the
// next ProcessEvents, like queued signals in a real toolkit.
func NewDemoApp() *App {
	app := NewApp()

	layers := NewWidget("QListWidget", "mLayerTreeView").WithItems().
		WithGeometry(model.Rect{X: 0, Y: 60, Width: 250, Height: 500})
	scale := NewWidget("QComboBox", "mScaleEdit").WithItems("1:1000", "1:5000", "1:10000", "1:50000").
		WithToolTip("Current map scale")
	coords := NewWidget("QLabel", "mCoordsEdit").WithText("0.000,0.000")

	win := NewWidget("QMainWindow", "QgisApp").
		WithGeometry(model.Rect{X: 0, Y: 0, Width: 1280, Height: 800}).
		WithMinimumSize(640, 480).
		BlockClose()
	dialog := newDataSourceDialog(app, layers)

	newProject := NewWidget("QToolButton", "mActionNewProject").WithText("New Project").WithToolTip("New Project (Ctrl+N)")
	newProject.OnClick = func(*Widget, platform.MouseButton) {
		app.SetDocument("", false)
		layers.WithItems()
		updateTitle(app, win)
	}
	saveProject := NewWidget("QToolButton", "mActionSaveProject").WithText("Save Project").WithToolTip("Save Project (Ctrl+S)")
	saveProject.OnClick = func(*Widget, platform.MouseButton) { saveDocument(app, win) }
	addVector := NewWidget("QToolButton", "mActionAddVectorLayer").WithText("Add Vector Layer…")
	addVector.OnClick = func(*Widget, platform.MouseButton) {
		app.Post(func() { app.ShowWindow(dialog) })
	}

	win.Add(
		NewWidget("QToolBar", "mFileToolBar").WithTitle("Project Toolbar").Add(newProject, saveProject),
		NewWidget("QToolBar", "mLayerToolBar").WithTitle("Manage Layers Toolbar").Add(addVector),
		NewWidget("QDockWidget", "Layers").WithTitle("Layers").Add(layers),
		NewWidget("QStatusBar", "mStatusBar").Add(
			NewWidget("QLabel", "").WithText("Coordinate"),
			coords,
			NewWidget("QLabel", "").WithText("Scale"),
			scale,
		),
	)
	app.AddWindow(win)
	app.AddWindow(dialog)
	updateTitle(app, win)

	app.Shortcut("Ctrl+S", func() { saveDocument(app, win) })
	app.Shortcut("Ctrl+N", func() { newProject.OnClick(newProject, platform.MouseLeft) })
	return app
}

func newDataSourceDialog(app *App, layers *Widget) *Widget {
	path := NewWidget("QLineEdit", "mQgsFileWidget").WithText("").WithPlaceholder("Vector dataset(s)")
	encoding := NewWidget("QComboBox", "mEncodingComboBox").WithItems("UTF-8", "System", "ISO-8859-1")
	openOptions := NewWidget("QCheckBox", "mOpenOptionsCheck").WithText("Show open options").WithChecked(false)
	add := NewWidget("QPushButton", "mAddButton").WithText("Add").Disabled()
	closeBtn := NewWidget("QPushButton", "mCloseButton").WithText("Close")

	dialog := NewWidget("QDialog", "QgsDataSourceManagerDialog").
		WithTitle("Data Source Manager | Vector").
		WithGeometry(model.Rect{X: 200, Y: 120, Width: 700, Height: 420}).
		AsDialog(true).
		Hidden()

	path.OnTextChanged = func(w *Widget) {
		text, _ := w.Text()
		add.SetEnabled(strings.TrimSpace(text) != "")
	}
	closeBtn.OnClick = func(*Widget, platform.MouseButton) { dialog.Hide() }
	add.OnClick = func(*Widget, platform.MouseButton) {
		source, _ := path.Text()
		if strings.HasSuffix(source, ".bad") {
			app.Post(func() { showError(app, source) })
			return
		}
		name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
		layers.items = append(layers.items, name)
		app.dirty = true
		dialog.Hide()
	}

	dialog.Add(
		NewWidget("QLabel", "").WithText("Source"),
		path,
		NewWidget("QLabel", "").WithText("Encoding"),
		encoding,
		openOptions,
		NewWidget("QDialogButtonBox", "buttonBox").Add(add, closeBtn),
	)
	return dialog
}

func showError(app *App, source string) {
	ok := NewWidget("QPushButton", "qt_msgbox_ok").WithText("OK")
	box := NewWidget("QMessageBox", "").
		WithTitle("Invalid Data Source").
		WithText(fmt.Sprintf("%s is not a valid or recognized data source.", source)).
		AsDialog(true).
		Hidden()
	box.Add(ok)
	ok.OnClick = func(*Widget, platform.MouseButton) { box.Destroy() }
	app.ShowWindow(box)
}

func saveDocument(app *App, win *Widget) {
	if app.fileName == "" {
		app.fileName = "/home/user/projects/untitled.qgz"
	}
	app.dirty = false
	updateTitle(app, win)
}

func updateTitle(app *App, win *Widget) {
	project := "Untitled Project"
	if app.fileName != "" {
		project = strings.TrimSuffix(filepath.Base(app.fileName), filepath.Ext(app.fileName))
	}
	win.WithTitle(fmt.Sprintf("%s - %s", project, demoAppName))
}
