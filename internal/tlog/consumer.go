package tlog

import "github.com/sirkon/errors"

type contextVar struct {
	name  string
	value any
}

// errorContextConsumer собирает структурированный контекст ошибки в порядке поставки.
type errorContextConsumer struct {
	vars []contextVar
}

var _ errors.ErrorContextConsumer = &errorContextConsumer{}

func (c *errorContextConsumer) add(name string, value any) {
	c.vars = append(c.vars, contextVar{name: name, value: value})
}

func (c *errorContextConsumer) Bool(name string, value bool) { c.add(name, value) }
func (c *errorContextConsumer) Int(name string, value int) { c.add(name, value) }
func (c *errorContextConsumer) Int8(name string, value int8) { c.add(name, value) }
func (c *errorContextConsumer) Int16(name string, value int16) { c.add(name, value) }
func (c *errorContextConsumer) Int32(name string, value int32) { c.add(name, value) }
func (c *errorContextConsumer) Int64(name string, value int64) { c.add(name, value) }
func (c *errorContextConsumer) Uint(name string, value uint) { c.add(name, value) }
func (c *errorContextConsumer) Uint8(name string, value uint8) { c.add(name, value) }
func (c *errorContextConsumer) Uint16(name string, value uint16) { c.add(name, value) }
func (c *errorContextConsumer) Uint32(name string, value uint32) { c.add(name, value) }
func (c *errorContextConsumer) Uint64(name string, value uint64) { c.add(name, value) }
func (c *errorContextConsumer) Float32(name string, value float32) { c.add(name, value) }
func (c *errorContextConsumer) Float64(name string, value float64) { c.add(name, value) }
func (c *errorContextConsumer) String(name string, value string) { c.add(name, value) }
func (c *errorContextConsumer) Any(name string, value any) { c.add(name, value) }
