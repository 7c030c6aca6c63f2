package widget

import (
	"sync"

	"sct/style"
	"sct/value"
)

// values lists all constants of generated enumeration, they start at zero and
// have no gaps. Generated name maps are package variables, so it must not be
// called during package initialization.
func values[E interface {
	~int
	IsValid() bool
}]() []E {
	var res []E
	for e := E(0); e.IsValid(); e++ {
		res = append(res, e)
	}
	return res
}

// Registry returns style registry describing all widgets of the package.
var Registry = sync.OnceValue(func() *style.Registry {
	var (
		contentModes    = value.NewEnumeration("ContentMode", values[ContentMode]()...)
		textAlignments  = value.NewEnumeration("TextAlignment", values[TextAlignment]()...)
		accessoryTypes  = value.NewEnumeration("AccessoryType", values[AccessoryType]()...)
		separatorStyles = value.NewEnumeration("SeparatorStyle", values[SeparatorStyle]()...)
	)

	r := style.NewRegistry()

	style.Register[Layer](r,
		style.Real("cornerRadius", func(l *Layer, v float64) { l.CornerRadius = v }),
		style.Real("borderWidth", func(l *Layer, v float64) { l.BorderWidth = v }),
		style.GraphicsColor("borderColor", func(l *Layer, v *value.Color) { l.BorderColor = v }),
		style.SizeOf("shadowOffset", func(l *Layer, v value.Size) { l.ShadowOffset = v }),
		style.Real("shadowOpacity", func(l *Layer, v float64) { l.ShadowOpacity = v }),
	)

	style.Register[View](r,
		style.RectOf("frame", func(w *View, v value.Rect) { w.Frame = v }),
		style.Color("backgroundColor", func(w *View, v *value.Color) { w.BackgroundColor = v }),
		style.Real("alpha", func(w *View, v float64) { w.Alpha = v }),
		style.Bool("hidden", func(w *View, v bool) { w.Hidden = v }),
		style.Bool("clipsToBounds", func(w *View, v bool) { w.ClipsToBounds = v }),
		style.Int("tag", func(w *View, v int) { w.Tag = v }),
		style.Enum("contentMode", contentModes, func(w *View, v ContentMode) { w.ContentMode = v }),
		style.Object("layer", func(w *View) *Layer { return w.Layer }),
		style.View("backgroundView", func(w *View, v *value.ImageView) { w.BackgroundView = v }),
	)

	style.Register[Label](r,
		style.Text("text", func(w *Label, v string) { w.Text = v }),
		style.Color("textColor", func(w *Label, v *value.Color) { w.TextColor = v }),
		style.Font("font", func(w *Label, v *value.Font) { w.Font = v }),
		style.Color("shadowColor", func(w *Label, v *value.Color) { w.ShadowColor = v }),
		style.SizeOf("shadowOffset", func(w *Label, v value.Size) { w.ShadowOffset = v }),
		style.Int("numberOfLines", func(w *Label, v int) { w.NumberOfLines = v }),
		style.Enum("textAlignment", textAlignments, func(w *Label, v TextAlignment) { w.TextAlignment = v }),
	)
	style.Embed(r, func(w *Label) *View { return &w.View })

	style.Register[ImageView](r,
		style.Image("image", func(w *ImageView, v *value.Image) { w.Image = v }),
		style.Image("highlightedImage", func(w *ImageView, v *value.Image) { w.HighlightedImage = v }),
	)
	style.Embed(r, func(w *ImageView) *View { return &w.View })

	style.Register[TableViewCell](r,
		style.Object("textLabel", func(w *TableViewCell) *Label { return w.TextLabel }),
		style.Object("detailTextLabel", func(w *TableViewCell) *Label { return w.DetailTextLabel }),
		style.View("selectedBackgroundView", func(w *TableViewCell, v *value.ImageView) { w.SelectedBackgroundView = v }),
		style.Enum("accessoryType", accessoryTypes, func(w *TableViewCell, v AccessoryType) { w.AccessoryType = v }),
	)
	style.Embed(r, func(w *TableViewCell) *View { return &w.View })

	style.Register[TableView](r,
		style.Enum("separatorStyle", separatorStyles, func(w *TableView, v SeparatorStyle) { w.SeparatorStyle = v }),
		style.Color("separatorColor", func(w *TableView, v *value.Color) { w.SeparatorColor = v }),
		style.Real("rowHeight", func(w *TableView, v float64) { w.RowHeight = v }),
	)
	style.Embed(r, func(w *TableView) *View { return &w.View })

	style.Register[NavigationBar](r,
		style.Image("backgroundImage", func(w *NavigationBar, v *value.Image) { w.BackgroundImage = v }),
		style.Color("tintColor", func(w *NavigationBar, v *value.Color) { w.TintColor = v }),
		style.Bool("translucent", func(w *NavigationBar, v bool) { w.Translucent = v }),
	)
	style.Embed(r, func(w *NavigationBar) *View { return &w.View })

	return r
})
