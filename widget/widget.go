// Package widget is a small sample toolkit whose objects can be styled by
// themes. It is what the command line tool applies styles to.
package widget

import (
	"fmt"

	"sct/value"
)

// How view lays out its content.
// ENUM(scaleToFill, scaleAspectFit, scaleAspectFill, redraw, center, top, bottom, left, right, topLeft, topRight, bottomLeft, bottomRight)
type ContentMode int

// ENUM(left, center, right, justified, natural)
type TextAlignment int

// Standard accessory of table cell.
// ENUM(none, disclosureIndicator, detailDisclosureButton, checkmark)
type AccessoryType int

// ENUM(none, singleLine, singleLineEtched)
type SeparatorStyle int

// Kind of widget New can build.
// ENUM(view, label, imageView, tableViewCell, tableView, navigationBar)
type Kind int

// Layer is drawing layer backing every view.
type Layer struct {
	CornerRadius  float64      `yaml:"cornerRadius"`
	BorderWidth   float64      `yaml:"borderWidth"`
	BorderColor   *value.Color `yaml:"borderColor,omitempty"`
	ShadowOffset  value.Size   `yaml:"shadowOffset"`
	ShadowOpacity float64      `yaml:"shadowOpacity"`
}

// View is base of all widgets.
type View struct {
	Frame           value.Rect       `yaml:"frame"`
	BackgroundColor *value.Color     `yaml:"backgroundColor,omitempty"`
	Alpha           float64          `yaml:"alpha"`
	Hidden          bool             `yaml:"hidden"`
	ClipsToBounds   bool             `yaml:"clipsToBounds"`
	Tag             int              `yaml:"tag"`
	ContentMode     ContentMode      `yaml:"contentMode"`
	Layer           *Layer           `yaml:"layer,omitempty"`
	BackgroundView  *value.ImageView `yaml:"backgroundView,omitempty"`
}

// Base returns view part of the widget.
func (v *View) Base() *View { return v }

// Label is a view showing single or multi line text.
type Label struct {
	View          `yaml:",inline"`
	Text          string        `yaml:"text"`
	TextColor     *value.Color  `yaml:"textColor,omitempty"`
	Font          *value.Font   `yaml:"font,omitempty"`
	ShadowColor   *value.Color  `yaml:"shadowColor,omitempty"`
	ShadowOffset  value.Size    `yaml:"shadowOffset"`
	NumberOfLines int           `yaml:"numberOfLines"`
	TextAlignment TextAlignment `yaml:"textAlignment"`
}

// ImageView shows an image, highlighted image replaces it when selected.
type ImageView struct {
	View             `yaml:",inline"`
	Image            *value.Image `yaml:"image,omitempty"`
	HighlightedImage *value.Image `yaml:"highlightedImage,omitempty"`
}

// TableViewCell is a row of a table with title and detail labels.
type TableViewCell struct {
	View                   `yaml:",inline"`
	TextLabel              *Label           `yaml:"textLabel,omitempty"`
	DetailTextLabel        *Label           `yaml:"detailTextLabel,omitempty"`
	SelectedBackgroundView *value.ImageView `yaml:"selectedBackgroundView,omitempty"`
	AccessoryType          AccessoryType    `yaml:"accessoryType"`
}

// TableView lists cells separated by lines.
type TableView struct {
	View           `yaml:",inline"`
	SeparatorStyle SeparatorStyle `yaml:"separatorStyle"`
	SeparatorColor *value.Color   `yaml:"separatorColor,omitempty"`
	RowHeight      float64        `yaml:"rowHeight"`
}

// NavigationBar is the bar on top of navigation controller.
type NavigationBar struct {
	View            `yaml:",inline"`
	BackgroundImage *value.Image `yaml:"backgroundImage,omitempty"`
	TintColor       *value.Color `yaml:"tintColor,omitempty"`
	Translucent     bool         `yaml:"translucent"`
}

// Widget is implemented by every widget of the package.
type Widget interface {
	Base() *View
}

func newView(w, h float64) View {
	return View{Frame: value.Rect{W: w, H: h}, Alpha: 1, Layer: &Layer{}}
}

func newLabel() *Label {
	return &Label{View: newView(100, 21), NumberOfLines: 1, TextAlignment: TextAlignmentNatural}
}

// Kinds lists names of widgets New can build.
func Kinds() []string {
	var names []string
	for k := KindView; k.IsValid(); k++ {
		names = append(names, k.String())
	}
	return names
}

// New builds widget of the named kind with default state.
func New(kind string) (Widget, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, fmt.Errorf("unknown widget %q, expected one of %v: %w", kind, Kinds(), err)
	}
	switch k {
	case KindView:
		v := newView(320, 480)
		return &v, nil
	case KindLabel:
		return newLabel(), nil
	case KindImageView:
		return &ImageView{View: newView(100, 100)}, nil
	case KindTableViewCell:
		return &TableViewCell{View: newView(320, 44), TextLabel: newLabel(), DetailTextLabel: newLabel()}, nil
	case KindTableView:
		return &TableView{View: newView(320, 480), SeparatorStyle: SeparatorStyleSingleLine, RowHeight: 44}, nil
	case KindNavigationBar:
		return &NavigationBar{View: newView(320, 44), Translucent: true}, nil
	}
	return nil, fmt.Errorf("unknown widget %q", kind)
}
