package dashboard

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed page.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("dashboard").Parse(pageSource))

const (
	osmTileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	osmAttribution     = "&copy; OpenStreetMap contributors"
	mapboxTileURL      = "https://api.mapbox.com/styles/v1/mapbox/streets-v12/tiles/{z}/{x}/{y}?access_token=%s"
	mapboxAttribution  = "&copy; Mapbox &copy; OpenStreetMap"
	defaultCenterLat   = 40.4168
	defaultCenterLng   = -3.7038
	defaultZoom        = 13
	defaultPollSeconds = 30
)

// PageConfig - параметры страницы карты
type PageConfig struct {
	MapTilesToken string
	PollInterval  time.Duration
	MarkersURL    string
	StatsURL      string
}

type pageView struct {
	TileURL     string
	Attribution string
	PollMillis  int64
	MarkersURL  string
	StatsURL    string
	CenterLat   float64
	CenterLng   float64
	Zoom        int
}

// RenderPage пишет HTML страницы карты.
// С токеном используются тайлы Mapbox, без него OpenStreetMap.
func RenderPage(w io.Writer, cfg PageConfig) error {
	view := pageView{
		TileURL:     osmTileURL,
		Attribution: osmAttribution,
		PollMillis:  cfg.PollInterval.Milliseconds(),
		MarkersURL:  cfg.MarkersURL,
		StatsURL:    cfg.StatsURL,
		CenterLat:   defaultCenterLat,
		CenterLng:   defaultCenterLng,
		Zoom:        defaultZoom,
	}
	if cfg.MapTilesToken != "" {
		view.TileURL = fmt.Sprintf(mapboxTileURL, cfg.MapTilesToken)
		view.Attribution = mapboxAttribution
	}
	if view.PollMillis <= 0 {
		view.PollMillis = defaultPollSeconds * 1000
	}
	if view.MarkersURL == "" {
		view.MarkersURL = "/api/dashboard/markers"
	}
	if view.StatsURL == "" {
		view.StatsURL = "/api/dashboard/stats"
	}

	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render dashboard page: %w", err)
	}
	return nil
}
