package handwrite_test

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/handwrite"
	"seehuhn.de/go/handwrite/glyph"
	"seehuhn.de/go/handwrite/raster"
	"seehuhn.de/go/handwrite/style"
	"seehuhn.de/go/handwrite/testcases"
)

func TestDotWithoutPressure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "handwrite")
	defer teardown()

	st := style.Default()
	st.NoPressure = true
	pg := style.DefaultPage()

	rec := &raster.Recorder{}
	stats, err := handwrite.NewSeeded(1).RenderTo(rec, ".", st, pg)
	require.NoError(t, err)

	require.NotEmpty(t, rec.Ops)
	assert.True(t, rec.Ops[0].Fill)
	assert.Equal(t, pg.Background, rec.Ops[0].Color)

	lines := rec.Lines()
	assert.Len(t, lines, 4)
	for _, op := range lines {
		assert.Equal(t, st.PenColor, op.Color)
		assert.Equal(t, float64(st.PenThickness), op.Width)
	}
	assert.Equal(t, handwrite.Stats{Glyphs: 1, Strokes: 1, Segments: 4, Lines: 1}, stats)

	// the dot is a closed loop
	assert.Equal(t, lines[0].P1, lines[3].P2)
}

func TestDotWithPressure(t *testing.T) {
	st := style.Default()
	st.PenThickness = 3

	rec := &raster.Recorder{}
	stats, err := handwrite.NewSeeded(1).RenderTo(rec, ".", st, style.DefaultPage())
	require.NoError(t, err)

	// a pen of thickness 3 never gets thinner than 2, so every segment
	// has a lighter overlay
	lines := rec.Lines()
	require.Len(t, lines, 8)
	for i := 0; i < 8; i += 2 {
		assert.Equal(t, st.PenColor, lines[i].Color)
		assert.Equal(t, lines[i].Width-1, lines[i+1].Width)
		assert.NotEqual(t, st.PenColor, lines[i+1].Color)
	}
	assert.Equal(t, 4, stats.Segments)
}

func TestEmptyText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "handwrite")
	defer teardown()

	pg := style.DefaultPage()
	pg.Width, pg.Height = 80, 50
	pg.MarginLeft, pg.MarginRight = 10, 10

	rec := &raster.Recorder{}
	stats, err := handwrite.New().RenderTo(rec, "", style.Default(), pg)
	require.NoError(t, err)
	assert.Equal(t, []raster.Op{{Fill: true, Color: pg.Background}}, rec.Ops)
	assert.Zero(t, stats)

	img, err := handwrite.New().Render("", style.Default(), pg)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 80, 50), img.Bounds())
	for y := range 50 {
		for x := range 80 {
			if img.RGBAAt(x, y) != pg.Background {
				t.Fatalf("pixel (%d,%d) is %v", x, y, img.RGBAAt(x, y))
			}
		}
	}
}

func TestBlankCharactersOnly(t *testing.T) {
	rec := &raster.Recorder{}
	stats, err := handwrite.New().RenderTo(rec, "#$%", style.Default(), style.DefaultPage())
	require.NoError(t, err)
	assert.Empty(t, rec.Lines())
	assert.Equal(t, 3, stats.Glyphs)
	assert.Zero(t, stats.Strokes)
}

func TestLinesIncludeEmptyLines(t *testing.T) {
	stats, err := handwrite.NewSeeded(1).RenderTo(&raster.Recorder{}, "a\n\nb\n\n", style.Default(), style.DefaultPage())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Glyphs)
	assert.Equal(t, 5, stats.Lines)
}

func TestSeededIsReproducible(t *testing.T) {
	const text = "the quick brown fox\njumps over the lazy dog"
	st := style.Default()
	st.SlantDegrees = 5

	img1, err := handwrite.NewSeeded(42).Render(text, st, style.DefaultPage())
	require.NoError(t, err)
	img2, err := handwrite.NewSeeded(42).Render(text, st, style.DefaultPage())
	require.NoError(t, err)
	assert.True(t, slices.Equal(img1.Pix, img2.Pix), "seeded output differs")

	img3, err := handwrite.NewSeeded(43).Render(text, st, style.DefaultPage())
	require.NoError(t, err)
	assert.False(t, slices.Equal(img1.Pix, img3.Pix), "different seeds give identical output")
}

func TestUnseededKeepsLayout(t *testing.T) {
	const text = "hello world"
	st := style.Default()
	st.Connect = true

	r := handwrite.New()
	rec1 := &raster.Recorder{}
	stats1, err := r.RenderTo(rec1, text, st, style.DefaultPage())
	require.NoError(t, err)
	rec2 := &raster.Recorder{}
	stats2, err := r.RenderTo(rec2, text, st, style.DefaultPage())
	require.NoError(t, err)

	assert.Equal(t, stats1, stats2)
	assert.Equal(t, 10, stats1.Glyphs)
	assert.NotEqual(t, rec1.Ops, rec2.Ops)
}

func TestInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		st   func(*style.Style)
		pg   func(*style.Page)
	}{
		{name: "thickness", st: func(st *style.Style) { st.PenThickness = -1 }},
		{name: "variation", st: func(st *style.Style) { st.Variation = 1.5 }},
		{name: "slant", st: func(st *style.Style) { st.SlantDegrees = 90 }},
		{name: "scale", st: func(st *style.Style) { st.SizeScale = -2 }},
		{name: "width", pg: func(pg *style.Page) { pg.Width = 0 }},
		{name: "margins", pg: func(pg *style.Page) { pg.MarginLeft = 500; pg.MarginRight = 500 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			st, pg := style.Default(), style.DefaultPage()
			if c.st != nil {
				c.st(&st)
			}
			if c.pg != nil {
				c.pg(&pg)
			}

			rec := &raster.Recorder{}
			_, err := handwrite.New().RenderTo(rec, "abc", st, pg)
			assert.ErrorIs(t, err, style.ErrInvalidConfig)
			assert.Empty(t, rec.Ops, "nothing is drawn")

			img, err := handwrite.New().Render("abc", st, pg)
			assert.ErrorIs(t, err, style.ErrInvalidConfig)
			assert.Nil(t, img)
		})
	}
}

func TestUnsetFieldsUseDefaults(t *testing.T) {
	pg := style.DefaultPage()
	pg.Background = color.RGBA{}

	rec := &raster.Recorder{}
	_, err := handwrite.NewSeeded(1).RenderTo(rec, "a", style.Style{NoPressure: true}, pg)
	require.NoError(t, err)
	assert.Equal(t, style.DefaultBackground, rec.Ops[0].Color)
	for _, op := range rec.Lines() {
		assert.Equal(t, style.DefaultPenColor, op.Color)
		assert.Equal(t, float64(style.DefaultPenThickness), op.Width)
	}
}

func TestConnect(t *testing.T) {
	st := style.Default()
	st.Connect = true

	stats, err := handwrite.NewSeeded(3).RenderTo(&raster.Recorder{}, "mm mm\nmm", st, style.DefaultPage())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Connectors)

	st.Connect = false
	stats, err = handwrite.NewSeeded(3).RenderTo(&raster.Recorder{}, "mm mm\nmm", st, style.DefaultPage())
	require.NoError(t, err)
	assert.Zero(t, stats.Connectors)
}

func TestCatmullRomAddsSegments(t *testing.T) {
	st := style.Default()
	plain, err := handwrite.NewSeeded(5).RenderTo(&raster.Recorder{}, "wave", st, style.DefaultPage())
	require.NoError(t, err)

	st.Smoothing = style.SmoothCatmullRom
	smooth, err := handwrite.NewSeeded(5).RenderTo(&raster.Recorder{}, "wave", st, style.DefaultPage())
	require.NoError(t, err)

	assert.Equal(t, plain.Strokes, smooth.Strokes)
	assert.Greater(t, smooth.Segments, plain.Segments)
}

func TestCustomGlyphTable(t *testing.T) {
	tab, err := glyph.Decode([]byte("x: [[[0, 0], [10, 10]], [[10, 0], [0, 10]]]\n"))
	require.NoError(t, err)

	r := handwrite.NewSeeded(1)
	r.Glyphs = tab
	st := style.Default()
	st.NoPressure = true

	rec := &raster.Recorder{}
	stats, err := r.RenderTo(rec, "xax", st, style.DefaultPage())
	require.NoError(t, err)
	assert.Len(t, rec.Lines(), 4)
	assert.Equal(t, 4, stats.Strokes)
}

func TestInkStaysOnPage(t *testing.T) {
	pg := style.DefaultPage()
	pg.Width, pg.Height = 300, 120
	img, err := handwrite.NewSeeded(9).Render(strings.Repeat("ink ", 30), style.Default(), pg)
	require.NoError(t, err)

	// text which runs off the bottom is clipped, not an error
	inked := 0
	for y := range pg.Height {
		for x := range pg.Width {
			if img.RGBAAt(x, y) != pg.Background {
				inked++
			}
		}
	}
	assert.Positive(t, inked)
}

func TestTestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				img, err := handwrite.NewSeeded(tc.Seed).Render(tc.Text, tc.Style, tc.Page)
				require.NoError(t, err)
				require.Equal(t, image.Rect(0, 0, tc.Page.Width, tc.Page.Height), img.Bounds())

				// the recorded calls replayed onto a fresh image give the
				// same pixels
				rec := &raster.Recorder{}
				_, err = handwrite.NewSeeded(tc.Seed).RenderTo(rec, tc.Text, tc.Style, tc.Page)
				require.NoError(t, err)
				replay := raster.NewImage(tc.Page.Width, tc.Page.Height)
				rec.Replay(replay)
				assert.True(t, slices.Equal(img.Pix, replay.Pix), "replayed image differs")

				bg := tc.Page.WithDefaults().Background
				inked := 0
				for y := range tc.Page.Height {
					for x := range tc.Page.Width {
						if img.RGBAAt(x, y) != bg {
							inked++
						}
					}
				}
				if strings.TrimSpace(tc.Text) == "" {
					assert.Zero(t, inked)
				} else {
					assert.Positive(t, inked)
				}

				// reference images are written by "go generate"
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadRGBA(refPath)
				if errors.Is(err, os.ErrNotExist) {
					t.Logf("%s not found, not comparing", refPath)
					return
				}
				require.NoError(t, err)
				require.Equal(t, ref.Bounds(), img.Bounds())
				if err := compareImages(name, ref, img.RGBA); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func loadRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	res := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := range bounds.Dy() {
		for x := range bounds.Dx() {
			res.Set(x, y, img.At(x+bounds.Min.X, y+bounds.Min.Y))
		}
	}
	return res, nil
}

func compareImages(name string, expected, actual *image.RGBA) error {
	const tolerance = 2
	const maxDiffPercent = 1

	total := len(expected.Pix)
	diffCount := 0
	hasDiff := false
	for i := range total {
		diff := int(expected.Pix[i]) - int(actual.Pix[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > 0 {
			hasDiff = true
			if diff > tolerance {
				diffCount++
			}
		}
	}

	maxAllowed := total * maxDiffPercent / 100
	if hasDiff {
		writeDiffImage(name, expected, actual)
	}
	if diffCount > maxAllowed {
		return fmt.Errorf("%d channel values differ by >%d (max allowed: %d)",
			diffCount, tolerance, maxAllowed)
	}
	return nil
}

func writeDiffImage(name string, expected, actual *image.RGBA) {
	os.MkdirAll("debug", 0755)

	gray := func(img *image.RGBA, x, y int) uint8 {
		return color.GrayModel.Convert(img.RGBAAt(x, y)).(color.Gray).Y
	}
	b := expected.Bounds()
	img := image.NewRGBA(b)
	for y := range b.Dy() {
		for x := range b.Dx() {
			img.SetRGBA(x, y, color.RGBA{
				R: gray(expected, x, y), // expected in red
				G: gray(actual, x, y),   // actual in green
				B: 0,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
