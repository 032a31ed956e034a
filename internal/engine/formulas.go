package engine

// Result is the transient output of one analysis: empty for empty input,
// otherwise exactly three values.
type Result []float64

// Labels names each output position of a mode's result.
func Labels(m Mode) [3]string {
	switch m {
	case Finance:
		return [3]string{"total", "tax (10%)", "projected growth (15%)"}
	case Healthcare:
		return [3]string{"average", "latest reading", "expected improvement"}
	case Inventory:
		return [3]string{"minimum", "maximum", "midpoint"}
	default:
		return [3]string{"average", "expected improvement", "next prediction"}
	}
}

type formula func(data []float64) Result

var formulas = map[Mode]formula{
	Education:  education,
	Finance:    finance,
	Healthcare: healthcare,
	Inventory:  inventory,
}

// Compute applies the formula set of mode m to data. It never mutates data.
func Compute(m Mode, data []float64) Result {
	if len(data) == 0 {
		return Result{}
	}
	f, ok := formulas[m]
	if !ok {
		return Result{}
	}
	return f(data)
}

func education(grades []float64) Result {
	avg := mean(grades)
	return Result{avg, avg + 2.5, grades[len(grades)-1] + 1.8}
}

func finance(amounts []float64) Result {
	total := sum(amounts)
	return Result{total, total * 0.1, total * 1.15}
}

func healthcare(metrics []float64) Result {
	last := metrics[len(metrics)-1]
	return Result{mean(metrics), last, last * 0.95}
}

func inventory(stock []float64) Result {
	lo, hi := stock[0], stock[0]
	for _, s := range stock {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return Result{lo, hi, (lo + hi) / 2}
}

func sum(vals []float64) float64 {
	var total float64
	for _, v := range vals {
		total += v
	}
	return total
}

func mean(vals []float64) float64 {
	return sum(vals) / float64(len(vals))
}
