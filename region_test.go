package img2ascii

import (
	"context"
	"errors"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func TestBlockSize(t *testing.T) {
	tests := []struct {
		width, k int
		want     int
		wantErr  bool
	}{
		{100, 10, 10, false},
		{100, 64, 1, false},
		{100, 7, 14, false},
		{100, 100, 1, false},
		{100, 0, 0, true},
		{100, -3, 0, true},
		{100, 101, 0, true},
		{0, 1, 0, true},
	}
	for _, tt := range tests {
		got, err := BlockSize(tt.width, tt.k)
		if tt.wantErr {
			if !errors.Is(err, ErrInputBounds) {
				t.Errorf("BlockSize(%d, %d): expected ErrInputBounds, got %v", tt.width, tt.k, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("BlockSize(%d, %d) = %d, %v; want %d", tt.width, tt.k, got, err, tt.want)
		}
	}
}

func TestGridSizeCropsRemainder(t *testing.T) {
	rows, cols := GridSize(100, 50, 14)
	if rows != 3 || cols != 7 {
		t.Errorf("GridSize(100, 50, 14) = %dx%d, want 3x7", rows, cols)
	}
	rows, cols = GridSize(100, 50, 0)
	if rows != 0 || cols != 0 {
		t.Errorf("GridSize with zero block = %dx%d, want 0x0", rows, cols)
	}
}

func TestSubRegionsRowMajor(t *testing.T) {
	img := imageutil.CreateBlockImage([][]uint8{
		{0, 40, 80},
		{120, 160, 200},
	}, 4)
	// A column and row that do not fill a block are dropped
	padded := imageutil.NewRGBAImage(img.Width()+3, img.Height()+2)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			padded.SetRGB(x, y, img.GetRGB(x, y))
		}
	}

	regions := SubRegions(padded, 4)
	if len(regions) != 6 {
		t.Fatalf("got %d regions, want 6", len(regions))
	}
	for i, region := range regions {
		row, col := region.Origin()
		if row != (i/3)*4 || col != (i%3)*4 {
			t.Errorf("region %d origin = (%d,%d), want (%d,%d)", i, row, col, (i/3)*4, (i%3)*4)
		}
		if region.Width() != 4 || region.Height() != 4 {
			t.Errorf("region %d is %dx%d", i, region.Width(), region.Height())
		}
		want := uint8(40 * i)
		if got := region.PixelAt(3, 3); got.R != want {
			t.Errorf("region %d pixel = %v, want gray %d", i, got, want)
		}
	}

	if SubRegions(padded, 0) != nil {
		t.Error("SubRegions with zero size should return nil")
	}
}

func TestScannerScan(t *testing.T) {
	img := imageutil.CreateBlockImage([][]uint8{
		{0, 255},
		{255, 0},
	}, 5)

	scanner := Scanner{}
	samples, rows, cols, err := scanner.Scan(context.Background(), img, 2)
	if err != nil {
		t.Fatal(err)
	}
	if rows != 2 || cols != 2 {
		t.Fatalf("grid = %dx%d, want 2x2", rows, cols)
	}
	want := []float64{0, 1, 1, 0}
	for i, s := range samples {
		if s.Brightness != want[i] {
			t.Errorf("sample %d brightness = %f, want %f", i, s.Brightness, want[i])
		}
	}

	// A nil cache is created on demand and identical blocks are shared
	if scanner.Cache == nil {
		t.Fatal("expected Scan to create a cache")
	}
	if stats := scanner.Cache.Stats(); stats.Computations != 2 || stats.Hits != 2 {
		t.Errorf("unexpected cache stats %+v", stats)
	}
}

func TestScannerParallelMatchesSequential(t *testing.T) {
	img := imageutil.CreateGradientImage(256, 128)

	sequential := Scanner{Workers: 1}
	want, rows, cols, err := sequential.Scan(context.Background(), img, 32)
	if err != nil {
		t.Fatal(err)
	}

	parallel := Scanner{Workers: 8}
	got, prows, pcols, err := parallel.Scan(context.Background(), img, 32)
	if err != nil {
		t.Fatal(err)
	}
	if rows != prows || cols != pcols || len(got) != len(want) {
		t.Fatalf("parallel grid %dx%d (%d samples), sequential %dx%d (%d samples)",
			prows, pcols, len(got), rows, cols, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: parallel %+v, sequential %+v", i, got[i], want[i])
		}
	}
}

func TestScannerErrors(t *testing.T) {
	scanner := Scanner{}

	_, _, _, err := scanner.Scan(context.Background(), imageutil.NewRGBAImage(10, 0), 2)
	if !errors.Is(err, ErrInputBounds) {
		t.Errorf("zero height: expected ErrInputBounds, got %v", err)
	}

	_, _, _, err = scanner.Scan(context.Background(), imageutil.NewRGBAImage(10, 10), 11)
	if !errors.Is(err, ErrInputBounds) {
		t.Errorf("k > width: expected ErrInputBounds, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		scanner := Scanner{Workers: workers}
		_, _, _, err := scanner.Scan(ctx, imageutil.CreateGradientImage(32, 32), 4)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: expected context.Canceled, got %v", workers, err)
		}
	}
}
