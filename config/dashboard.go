package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ChartSpec configures one chart: the question column and how to present it.
type ChartSpec struct {
	Column string `yaml:"column"`
	Title  string `yaml:"title"`
	// Style is pie, bar or donut.
	Style string `yaml:"style"`
	// Order overrides the category order of pie and donut charts.
	Order string `yaml:"order"`
}

type Donut struct {
	HoleRadius float64 `yaml:"hole_radius"`
	StartAngle float64 `yaml:"start_angle"`
}

// Dashboard is the immutable description of what a render pass produces.
type Dashboard struct {
	Title        string      `yaml:"title"`
	GroupColumn  string      `yaml:"group_column"`
	GroupAliases []string    `yaml:"group_aliases"`
	Charts       []ChartSpec `yaml:"charts"`
	TextColumn   string      `yaml:"text_column"`
	TextTitle    string      `yaml:"text_title"`
	TextQuestion string      `yaml:"text_question"`
	Palette      []string    `yaml:"palette"`
	Stopwords    []string    `yaml:"stopwords"`
	MaxWords     int         `yaml:"max_words"`
	Separator    string      `yaml:"separator"`
	Donut        Donut       `yaml:"donut"`
}

// DefaultDashboard mirrors the course-survey dashboard.
func DefaultDashboard() Dashboard {
	return Dashboard{
		Title:        "Dashboard de Encuestas",
		GroupColumn:  "nombre_actividad",
		GroupAliases: []string{"comision"},
		Charts: []ChartSpec{
			{Column: "conocimientos_previos", Title: "CONOCIMIENTOS PREVIOS SOBRE LOS TEMAS DESARROLLADOS", Style: "pie"},
			{Column: "valoracion_curso", Title: "VALORACIÓN GENERAL DEL CURSO", Style: "pie"},
			{Column: "conocimientos_aplicables", Title: "APLICACIÓN PRÁCTICA EN EL PUESTO DE TRABAJO", Style: "pie"},
			{Column: "valoracion_docente", Title: "VALORACIÓN DEL DESEMPEÑO DOCENTE", Style: "pie"},
		},
		TextColumn:   "aprendizajes_adquiridos",
		TextTitle:    "CONOCIMIENTOS ADQUIRIDOS EN EL CURSO",
		TextQuestion: "¿Qué aprendizajes adquiriste en este curso?",
		Palette:      []string{"#F4A7B9", "#A9CCE3", "#ABEBC6", "#F9E79F", "#D2B4DE"},
		MaxWords:     40,
		Separator:    ",",
		Donut:        Donut{HoleRadius: 0.55, StartAngle: 90},
	}
}

// LoadDashboard reads a YAML file over the defaults. A missing file yields the defaults.
func LoadDashboard(path string) (Dashboard, error) {
	d := DefaultDashboard()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return d, nil
	}
	if err != nil {
		return d, fmt.Errorf("read dashboard config: %w", err)
	}
	return ParseDashboard(data)
}

func ParseDashboard(data []byte) (Dashboard, error) {
	d := DefaultDashboard()
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("parse dashboard config: %w", err)
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

func (d Dashboard) Validate() error {
	if d.GroupColumn == "" {
		return errors.New("group_column is required")
	}
	if len(d.Charts) == 0 && d.TextColumn == "" {
		return errors.New("at least one chart or a text_column is required")
	}
	for i, c := range d.Charts {
		if c.Column == "" {
			return fmt.Errorf("charts[%d]: column is required", i)
		}
	}
	if len([]rune(d.Separator)) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", d.Separator)
	}
	if d.Donut.HoleRadius < 0 || d.Donut.HoleRadius >= 1 {
		return fmt.Errorf("donut.hole_radius must be in [0, 1), got %v", d.Donut.HoleRadius)
	}
	return nil
}

// Columns lists every answer column the dashboard reads.
func (d Dashboard) Columns() []string {
	cols := make([]string, 0, len(d.Charts)+1)
	for _, c := range d.Charts {
		cols = append(cols, c.Column)
	}
	if d.TextColumn != "" {
		cols = append(cols, d.TextColumn)
	}
	return cols
}
