package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/townfolk/components"
	cfg "github.com/automoto/townfolk/config"
	"github.com/automoto/townfolk/i18n"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ConversationUI is the modal panel shown after a dialog topic or the shop
// was chosen in the action menu
type ConversationUI struct {
	UI           *ebitenui.UI
	Conversation *components.ConversationData

	// Callbacks
	OnClose func()

	titleLabel  *widget.Label
	bodyLabel   *widget.Label
	closeButton *widget.Button

	titleFace text.Face
	textFace  text.Face

	shownVersion int
}

// NewConversationUI creates the conversation panel with ebitenui
func NewConversationUI(conv *components.ConversationData, onClose func()) *ConversationUI {
	cui := &ConversationUI{
		Conversation: conv,
		OnClose:      onClose,
		shownVersion: -1,
	}

	cui.loadFonts()
	cui.buildUI()

	return cui
}

func (cui *ConversationUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	cui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Conversation.TitleFontSize,
	}
	cui.textFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Conversation.TextFontSize,
	}
}

func (cui *ConversationUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 10, Bottom: 10, Left: 14, Right: 14}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Conversation.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Conversation.MinWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	cui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.titleFace, &widget.LabelColor{
			Idle: cfg.Conversation.TitleColor,
		}),
	)
	panel.AddChild(cui.titleLabel)

	cui.bodyLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.textFace, &widget.LabelColor{
			Idle: cfg.Conversation.TextColor,
		}),
	)
	panel.AddChild(cui.bodyLabel)

	cui.closeButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(80, 20),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionEnd,
			}),
		),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text(i18n.T(i18n.CloseButton), &cui.textFace, &widget.ButtonTextColor{
			Idle:    cfg.Conversation.ButtonTextColor,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if cui.OnClose != nil {
				cui.OnClose()
			}
		}),
	)
	panel.AddChild(cui.closeButton)

	rootContainer.AddChild(panel)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *ConversationUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.Conversation.ButtonIdle),
		Hover:   image.NewNineSliceColor(cfg.Conversation.ButtonHover),
		Pressed: image.NewNineSliceColor(cfg.Conversation.ButtonPressed),
	}
}

// Update refreshes the labels when the conversation changed and runs the UI
func (cui *ConversationUI) Update() {
	if !cui.Conversation.Open {
		return
	}
	if cui.shownVersion != cui.Conversation.Version {
		cui.shownVersion = cui.Conversation.Version
		cui.refresh()
	}
	cui.UI.Update()
}

// Draw renders the panel when open
func (cui *ConversationUI) Draw(screen *ebiten.Image) {
	if !cui.Conversation.Open {
		return
	}
	cui.UI.Draw(screen)
}

func (cui *ConversationUI) refresh() {
	title, body := PanelText(cui.Conversation)
	cui.titleLabel.Label = title
	cui.bodyLabel.Label = body

	if textWidget := cui.closeButton.Text(); textWidget != nil {
		textWidget.Label = i18n.T(i18n.CloseButton)
	}
}

// PanelText returns the localized title and body for the panel
func PanelText(conv *components.ConversationData) (title, body string) {
	data := map[string]interface{}{"Name": conv.Speaker}
	if conv.Mode == components.ConversationShop {
		return i18n.Localize(i18n.ShopTitle, data), i18n.T(i18n.ShopClosed)
	}
	return i18n.Localize(i18n.TalkTitle, data), conv.Topic
}
