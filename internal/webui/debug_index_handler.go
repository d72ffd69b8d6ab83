package webui

import (
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"nexttrain.org/internal/models"
	"nexttrain.org/internal/timetable"
)

var debugTemplate = template.Must(template.New("debug_index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<pre>{{.Pre}}</pre>
</body>
</html>
`))

type debugData struct {
	Title string
	Pre   string
}

// debugTrip is a trip flattened for dumping; timetable.Trip keeps its stops private.
type debugTrip struct {
	Label string
	Stops []timetable.Stop
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := debugTemplate.Execute(w, debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	var data interface{}
	var title string

	switch r.URL.Query().Get("dataType") {
	case "trips":
		data = webUI.trips()
		title = "Timetable - Trips"
	case "stations":
		data = webUI.Timetable.Stations()
		title = "Timetable - Stations"
	case "config":
		data = webUI.Config
		title = "Configuration"
	case "clock":
		data = models.NewCurrentTimeModel(webUI.Clock.Now(), webUI.Location)
		title = "Reference Clock"
	default:
		data = map[string]string{
			"error": "Please use one of the following: trips, stations, config, clock.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}

func (webUI *WebUI) trips() []debugTrip {
	trips := make([]debugTrip, webUI.Timetable.Len())
	for i := range trips {
		trip := webUI.Timetable.Trip(i)
		stops := make([]timetable.Stop, trip.Len())
		for j := range stops {
			stops[j] = trip.Stop(j)
		}
		trips[i] = debugTrip{Label: trip.Label(), Stops: stops}
	}
	return trips
}
