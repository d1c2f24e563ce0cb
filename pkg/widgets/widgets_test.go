package widgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/graphics"
	"github.com/go-drift/livenative/pkg/markup"
	lntest "github.com/go-drift/livenative/pkg/testing"
	"github.com/go-drift/livenative/pkg/widgets"
)

func TestRegisterAll(t *testing.T) {
	reg := core.NewRegistry()
	if err := widgets.RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	if reg.Len() != len(widgets.Entries()) {
		t.Errorf("Len() = %d, want %d", reg.Len(), len(widgets.Entries()))
	}
	if err := widgets.RegisterAll(reg); err == nil {
		t.Error("registering twice should fail")
	}
	for _, tag := range reg.Tags() {
		if _, ok := core.DefaultRegistry.Lookup(tag); !ok {
			t.Errorf("%s missing from DefaultRegistry", tag)
		}
	}
}

func TestBadgedBox_FirstBadgeWins(t *testing.T) {
	tester := mount(t, `<badged-box>
		<icon name="mail"/>
		<badge>3</badge>
		<text template="badge">9+</text>
	</badged-box>`)

	box, ok := lntest.WidgetAs[*widgets.BadgedBox](tester.Find(lntest.ByTag("badged-box")))
	if !ok {
		t.Fatal("expected a BadgedBox")
	}
	if box.Badge() == nil || box.Badge().SourceTag != "badge" {
		t.Fatalf("Badge = %v, want the badge element", box.Badge())
	}
	if len(box.Content()) != 2 || box.Content()[0].SourceTag != "icon" || box.Content()[1].SourceTag != "text" {
		t.Errorf("Content = %v", box.Content())
	}
	if got := tester.Find(lntest.ByRole(widgets.RoleBadge)).Count(); got != 1 {
		t.Errorf("%d nodes fill the badge role, want 1", got)
	}
}

func TestBadgedBox_TemplateFillsSlot(t *testing.T) {
	tester := mount(t, `<badged-box><text template="badge">new</text><icon name="home"/></badged-box>`)
	box, _ := lntest.WidgetAs[*widgets.BadgedBox](tester.Find(lntest.ByTag("badged-box")))
	if box.Badge() == nil || box.Badge().Role != widgets.RoleBadge {
		t.Fatalf("Badge = %v, want the templated text", box.Badge())
	}
	if text, ok := box.Badge().Widget.(*widgets.Text); !ok || text.Content != "new" {
		t.Errorf("badge widget = %v", box.Badge().Widget)
	}
}

func TestBadgedBox_PatchedBadge(t *testing.T) {
	tester := mount(t, `<badged-box><badge>1</badge><icon name="mail"/></badged-box>`)
	box, _ := lntest.WidgetAs[*widgets.BadgedBox](tester.Find(lntest.ByTag("badged-box")))
	old := box.Badge()

	if err := tester.Patch("0/0", `<badge>9</badge>`); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if !old.Disposed() {
		t.Error("replaced badge should be disposed")
	}
	badge := box.Badge()
	if badge == nil || badge.Disposed() {
		t.Fatalf("Badge = %v, want the live replacement", badge)
	}
	if got := badge.Widget.(*widgets.Badge).Content; got != "9" {
		t.Errorf("Badge content = %q, want 9", got)
	}
	if got := len(box.Content()); got != 1 {
		t.Errorf("Content has %d nodes, want 1", got)
	}
}

func TestCard_HeaderAndColors(t *testing.T) {
	tester := mount(t, `<card elevation="4" shape="pill" colors='{"container":"#FF112233","content":"white","bogus":"nope"}'>
		<text template="header">Title</text>
		<text template="header">Second</text>
		<text>Body</text>
	</card>`)

	card, ok := lntest.WidgetAs[*widgets.Card](tester.Find(lntest.ByTag("card")))
	if !ok {
		t.Fatal("expected a Card")
	}
	if card.Header() == nil || card.Header().Widget.(*widgets.Text).Content != "Title" {
		t.Errorf("Header = %v, want Title", card.Header())
	}
	if len(card.Content()) != 2 {
		t.Errorf("Content has %d nodes, want the second header and the body", len(card.Content()))
	}
	wantColors := map[string]graphics.Color{
		"container": graphics.Color(0xFF112233),
		"content":   graphics.ColorWhite,
	}
	if diff := cmp.Diff(wantColors, card.Colors); diff != "" {
		t.Errorf("Colors mismatch (-want +got):\n%s", diff)
	}
	if card.Background != graphics.Color(0xFF112233) {
		t.Errorf("Background = %v, want the container color", card.Background)
	}
	if card.Elevation != 4 || card.Shape != widgets.ShapePill || card.CornerRadius != widgets.DefaultCard.CornerRadius {
		t.Errorf("CardConfig = %+v", card.CardConfig)
	}
}

func TestCard_MalformedColorsIgnored(t *testing.T) {
	tester := mount(t, `<card colors="not json" background="navy"/>`)
	card, _ := lntest.WidgetAs[*widgets.Card](tester.Find(lntest.ByTag("card")))
	if card.Colors != nil {
		t.Errorf("Colors = %v, want nil", card.Colors)
	}
	if card.Background != graphics.RGB(0, 0, 0x80) {
		t.Errorf("Background = %v, want navy", card.Background)
	}
}

func TestLookupIcon(t *testing.T) {
	tests := []struct {
		name string
		want rune
		ok   bool
	}{
		{"mail", '\uE158', true},
		{"Arrow_Back", '\uE5C4', true},
		{" search ", '\uE8B6', true},
		{"unicorn", 0, false},
	}
	for _, tt := range tests {
		got, ok := widgets.LookupIcon(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupIcon(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}

	tester := mount(t, `<row><icon name="unicorn"/><icon name="star" tint="gold" icon-size="32"/></row>`)
	icons := tester.Find(lntest.ByTag("icon"))
	if icons.At(0).Widget.(*widgets.Icon).Glyph != widgets.MissingGlyph {
		t.Error("unknown icon should render the missing glyph")
	}
	star := icons.At(1).Widget.(*widgets.Icon)
	if star.Glyph != '\uE838' || star.Size != 32 || star.Tint != graphics.RGB(0xFF, 0xD7, 0x00) {
		t.Errorf("star = %+v", star.IconConfig)
	}
}

func TestFlex_Attributes(t *testing.T) {
	tester := mount(t, `<column vertical-arrangement="space-between" horizontal-alignment="center" spacing="8" padding="16">
		<row horizontal-arrangement="end" vertical-alignment="bottom" scroll="true"/>
	</column>`)

	flexes := tester.Find(lntest.ByType[*widgets.Flex]())
	column := flexes.At(0).Widget.(*widgets.Flex)
	want := widgets.FlexConfig{
		MainAxisAlignment:  widgets.MainAxisAlignmentSpaceBetween,
		CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
		Spacing:            8,
	}
	if column.Axis != widgets.Vertical || column.FlexConfig != want {
		t.Errorf("column = %v %+v", column.Axis, column.FlexConfig)
	}
	if column.Modifiers().Padding != attr.All(16) {
		t.Errorf("Padding = %+v", column.Modifiers().Padding)
	}

	row := flexes.At(1).Widget.(*widgets.Flex)
	if row.Axis != widgets.Horizontal || row.MainAxisAlignment != widgets.MainAxisAlignmentEnd ||
		row.CrossAxisAlignment != widgets.CrossAxisAlignmentEnd || !row.Scroll {
		t.Errorf("row = %v %+v", row.Axis, row.FlexConfig)
	}
}

func TestLeafWidgetsDropChildren(t *testing.T) {
	tester := mount(t, `<column><text>a<icon name="add"/></text><divider><text>x</text></divider><spacer size="8"/></column>`)
	for _, n := range tester.Root().Children {
		if len(n.Children) != 0 {
			t.Errorf("%s kept %d children", n.Widget.Kind(), len(n.Children))
		}
	}
	if tester.Find(lntest.ByTag("icon")).Exists() {
		t.Error("child of text should not be in the tree")
	}
	spacer := tester.Find(lntest.ByTag("spacer")).Widget()
	if spacer.Modifiers().Width != attr.Fixed(8) || spacer.Modifiers().Height != attr.Fixed(8) {
		t.Errorf("spacer size = %v x %v", spacer.Modifiers().Width, spacer.Modifiers().Height)
	}
}

func TestText_StyleAndRepeatedAttributes(t *testing.T) {
	tester := mount(t, `<text font-size="-2" font-weight="bold" color="red" color="#FF0000FF" text-align="center" max-lines="2">Hi</text>`)
	text := tester.Find(lntest.ByTag("text")).Widget().(*widgets.Text)
	want := widgets.TextStyle{
		Color:      graphics.Color(0xFF0000FF),
		FontSize:   widgets.DefaultTextStyle.FontSize,
		FontWeight: widgets.FontWeightBold,
		Align:      widgets.TextAlignCenter,
		MaxLines:   2,
	}
	if text.Style != want {
		t.Errorf("Style = %+v, want %+v", text.Style, want)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	doc, err := markup.ParseString(`<card colors='{"container":"teal"}'>
		<text template="header" font-size="18">Inbox</text>
		<badged-box><badge>2</badge><icon name="mail"/></badged-box>
		<divider thickness="2" color="silver"/>
	</card>`)
	if err != nil {
		t.Fatal(err)
	}
	desc, _ := doc.Root()

	a, errA := core.Resolve(desc, nil, nil)
	b, errB := core.Resolve(desc, nil, nil)
	if errA != nil || errB != nil {
		t.Fatalf("Resolve: %v, %v", errA, errB)
	}
	if a.String() != b.String() {
		t.Errorf("trees differ:\n%s\n%s", a, b)
	}
	cardA := a.Widget.(*widgets.Card)
	cardB := b.Widget.(*widgets.Card)
	if diff := cmp.Diff(cardA.CardConfig, cardB.CardConfig); diff != "" {
		t.Errorf("card config differs:\n%s", diff)
	}
}
