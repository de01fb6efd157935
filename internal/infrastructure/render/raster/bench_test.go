package raster

import (
	"math/rand"
	"testing"

	"github.com/younwookim/wenbian/internal/application/scene"
	"github.com/younwookim/wenbian/internal/application/scene/pattern"
	"github.com/younwookim/wenbian/internal/domain/palette"
)

// 장면별 한 프레임 그리기 비용 (320x180)
func BenchmarkSceneDraw(b *testing.B) {
	for _, sc := range pattern.Catalog() {
		b.Run(sc.Name, func(b *testing.B) {
			s := NewSurface(320, 180)
			s.Clear(sc.Tone.Background())
			dc := &scene.DrawContext{Canvas: s, Rand: rand.New(rand.NewSource(1))}
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				dc.Frame = n + 1
				if err := sc.Draw(dc); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// 전환 시 전체 배경 다시 칠하기
func BenchmarkClear(b *testing.B) {
	s := NewSurface(1280, 720)
	for n := 0; n < b.N; n++ {
		if n%2 == 0 {
			s.Clear(palette.DarkBackground)
		} else {
			s.Clear(palette.LightBackground)
		}
	}
}

// Case: 경로 유지 후 채우기와 외곽선
func BenchmarkFillStrokePath(b *testing.B) {
	s := NewSurface(320, 180)
	for n := 0; n < b.N; n++ {
		s.NewPath()
		s.Ellipse(160, 90, 60, 40)
		s.Fill(palette.Gold)
		s.Stroke(palette.Red, 2)
	}
}
