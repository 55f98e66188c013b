package store

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	KiB float64 = 1 << (10 * (iota + 1))
	MiB
	GiB
	TiB
)

// Memory counts bytes moved through the store.
type Memory uint64

func (m Memory) Bytes() uint64 {
	return uint64(m)
}

func (m Memory) KiB() float64 {
	return float64(m) / KiB
}

func (m Memory) MiB() float64 {
	return float64(m) / MiB
}

func (m Memory) GiB() float64 {
	return float64(m) / GiB
}

func (m Memory) TiB() float64 {
	return float64(m) / TiB
}

func (m Memory) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d Bytes", m.Bytes())
}
