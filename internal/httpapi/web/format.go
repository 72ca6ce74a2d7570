package web

import "github.com/dustin/go-humanize"

// humanBytes renders n in binary units (KiB, MiB, GiB).
func humanBytes(n uint64) string { return humanize.IBytes(n) }

func percent(part, total uint64) string {
	if total == 0 {
		return "0.0%"
	}
	return humanize.FormatFloat("#,###.#", 100*float64(part)/float64(total)) + "%"
}
