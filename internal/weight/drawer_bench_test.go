package weight

import "testing"

func BenchmarkDrawer_Draw(b *testing.B) {
	tbl := standardPackTable(b)

	b.Run("crypto", func(b *testing.B) {
		d := NewDrawer(DefaultSource())
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = d.Draw(tbl)
		}
	})

	b.Run("seeded", func(b *testing.B) {
		d := NewDrawer(NewSeededSource(1))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = d.Draw(tbl)
		}
	})
}

func BenchmarkTable_DrawUnits(b *testing.B) {
	tbl := standardPackTable(b)
	total := tbl.Total()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tbl.DrawUnits(int64(i) % total)
	}
}
