package services

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"cloud.google.com/go/civil"

	catmodels "github.com/ghuser/wardrobe/services/catalog/domain/models"
	"github.com/ghuser/wardrobe/services/reminder/domain/models"
)

// EmptyOutfitLine is shown when nothing is planned for the day.
const EmptyOutfitLine = "Nothing planned for today."

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/reminder.html.tmpl"))
	textTmpl = texttemplate.Must(texttemplate.New("reminder.txt.tmpl").
			Funcs(texttemplate.FuncMap{"inc": func(i int) int { return i + 1 }}).
			ParseFS(templateFS, "templates/reminder.txt.tmpl"))
)

type view struct {
	Date     string
	Weekday  string
	City     string
	Forecast *models.DailyForecast
	Items    []string
	Empty    string
}

// Compose renders the reminder for date. forecast may be nil, in which case
// the weather block is left out. The returned message has no recipient.
func Compose(items []*catmodels.ClothingItem, forecast *models.DailyForecast, city string, date civil.Date) (models.Message, error) {
	v := view{
		Date:     date.String(),
		Weekday:  date.In(time.UTC).Weekday().String(),
		Forecast: forecast,
		Items:    make([]string, len(items)),
		Empty:    EmptyOutfitLine,
	}
	if forecast != nil {
		v.City = city
	}
	for i, item := range items {
		v.Items[i] = item.Describe()
	}

	var html, text bytes.Buffer
	if err := htmlTmpl.Execute(&html, v); err != nil {
		return models.Message{}, fmt.Errorf("render html reminder: %w", err)
	}
	if err := textTmpl.Execute(&text, v); err != nil {
		return models.Message{}, fmt.Errorf("render text reminder: %w", err)
	}
	return models.Message{
		Subject:  fmt.Sprintf("Daily outfit reminder - %04d/%02d/%02d", date.Year, date.Month, date.Day),
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}
