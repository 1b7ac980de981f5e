package main

import (
	"classroom-planner/internal/ar"
	"classroom-planner/internal/catalog"
	"classroom-planner/internal/config"
	"classroom-planner/internal/debug"
	"classroom-planner/internal/graphics"
	"classroom-planner/internal/logger"
	"classroom-planner/internal/session"
)

func main() {
	log := logger.New()
	prefs, err := config.Load()
	if err != nil {
		log.Logf("config load failed: %v", err)
		prefs = config.Default()
	}
	cat, err := catalog.Load(prefs.CatalogPath)
	if err != nil {
		log.Logf("catalog load failed: %v", err)
		cat = catalog.Default()
	}

	capture := ar.NewCapture(prefs.CameraDevice, log)
	detector := ar.NewDetector()
	defer detector.Close()

	sess := session.New(prefs, cat, log, capture)
	sess.SetMarkerWriter(ar.WriteMarker)
	sess.SetScreenshotFunc(func() error {
		return graphics.SaveScreenshot(prefs.LayoutsDir)
	})

	dbg := debug.New(sess, log)
	app := graphics.New(sess, capture, detector, dbg)

	log.Log("planner started")
	graphics.Run(prefs.WindowWidth, prefs.WindowHeight, prefs.TargetFPS, "Classroom Planner", app.Update, app.Draw)

	if capture.Running() {
		capture.Stop()
	}
	prefs.WindowWidth, prefs.WindowHeight = sess.Size()
	if err := config.Save(prefs); err != nil {
		log.Logf("config save failed: %v", err)
	}
	log.Log("planner closed")
}
