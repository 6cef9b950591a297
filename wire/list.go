package wire

import "github.com/elpasso/ps-core/curve"

// appendG1List appends a tagged G1_LIST element.
func appendG1List(buf []byte, tag Tag, points []curve.G1) ([]byte, error) {
	if err := checkVarintRange(len(points)); err != nil {
		return nil, err
	}
	buf = append(buf, byte(tag))
	buf = appendVarint(buf, len(points))
	var err error
	for _, p := range points {
		buf, err = appendListItem(buf, p.Bytes())
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func appendG2List(buf []byte, tag Tag, points []curve.G2) ([]byte, error) {
	if err := checkVarintRange(len(points)); err != nil {
		return nil, err
	}
	buf = append(buf, byte(tag))
	buf = appendVarint(buf, len(points))
	var err error
	for _, p := range points {
		buf, err = appendListItem(buf, p.Bytes())
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func appendFrList(buf []byte, tag Tag, scalars []curve.Scalar) ([]byte, error) {
	if err := checkVarintRange(len(scalars)); err != nil {
		return nil, err
	}
	buf = append(buf, byte(tag))
	buf = appendVarint(buf, len(scalars))
	var err error
	for _, s := range scalars {
		buf, err = appendListItem(buf, s.Bytes())
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// appendStrList appends a tagged STR_LIST element. A hidden attribute
// slot (⊥) is represented by an empty byte string, per §4.1.
func appendStrList(buf []byte, tag Tag, values [][]byte) ([]byte, error) {
	if err := checkVarintRange(len(values)); err != nil {
		return nil, err
	}
	buf = append(buf, byte(tag))
	buf = appendVarint(buf, len(values))
	var err error
	for _, v := range values {
		buf, err = appendListItem(buf, v)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func (c *cursor) readG1List(want Tag) []curve.G1 {
	count := c.readListHeader(want)
	if c.err != nil {
		return nil
	}
	out := make([]curve.G1, 0, count)
	for i := 0; i < count; i++ {
		item := c.readListItem()
		if c.err != nil {
			return nil
		}
		p, err := curve.G1FromBytes(item)
		if err != nil {
			c.fail(err)
			return nil
		}
		out = append(out, p)
	}
	return out
}

func (c *cursor) readG2List(want Tag) []curve.G2 {
	count := c.readListHeader(want)
	if c.err != nil {
		return nil
	}
	out := make([]curve.G2, 0, count)
	for i := 0; i < count; i++ {
		item := c.readListItem()
		if c.err != nil {
			return nil
		}
		p, err := curve.G2FromBytes(item)
		if err != nil {
			c.fail(err)
			return nil
		}
		out = append(out, p)
	}
	return out
}

func (c *cursor) readFrList(want Tag) []curve.Scalar {
	count := c.readListHeader(want)
	if c.err != nil {
		return nil
	}
	out := make([]curve.Scalar, 0, count)
	for i := 0; i < count; i++ {
		item := c.readListItem()
		if c.err != nil {
			return nil
		}
		s, err := curve.ScalarFromBytes(item)
		if err != nil {
			c.fail(err)
			return nil
		}
		out = append(out, s)
	}
	return out
}

func (c *cursor) readStrList(want Tag) [][]byte {
	count := c.readListHeader(want)
	if c.err != nil {
		return nil
	}
	out := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		item := c.readListItem()
		if c.err != nil {
			return nil
		}
		cp := make([]byte, len(item))
		copy(cp, item)
		out = append(out, cp)
	}
	return out
}
