package domain

import "math"

// Aggregate 按权重聚合五个类目得分，结果限制在 [0,100]，保留一位小数
func Aggregate(subscores map[Category]float64, w Weights) float64 {
	var total float64
	for _, cat := range Categories() {
		total += subscores[cat] * float64(w.Of(cat)) / 100.0
	}
	return round1(clamp(total, 0, 100))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
