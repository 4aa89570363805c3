// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

// ReadContainer reads a container's tag, length prefix, and 4-byte type
// hash, then invokes fn with the cursor positioned at the first child
// byte. The wire length prefix counts the hash plus the children; fn
// receives just the children count. fn must not read beyond that many
// bytes.
func (d *Decoder) ReadContainer(fn func(d *Decoder, hash uint32, length int) error) error {
	pos := d.head
	t, err := d.ReadTag()
	if err != nil {
		return err
	}
	total, err := d.containerLen(t)
	if err != nil {
		d.head = pos
		return err
	}
	if err := d.probe(4); err != nil {
		return err
	}
	hash := d.le32()
	return fn(d, hash, total-4)
}

// containerLen reads the byte-length prefix for a container whose tag has
// already been consumed by the caller.
func (d *Decoder) containerLen(tag byte) (int, error) {
	switch {
	case tag >= tagContainerLo && tag <= tagContainerHi:
		return int(tag - tagContainerLo), nil
	case tag == tagContainer8:
		if err := d.probe(1); err != nil {
			return 0, err
		}
		n := int(d.buf[d.head])
		d.head++
		return n, nil
	case tag == tagContainer16:
		if err := d.probe(2); err != nil {
			return 0, err
		}
		return int(d.le16()), nil
	case tag == tagContainer32:
		if err := d.probe(4); err != nil {
			return 0, err
		}
		return int(d.le32()), nil
	case tag == tagContainer48:
		if err := d.probe(6); err != nil {
			return 0, err
		}
		return int(d.le48()), nil
	default:
		return 0, errTypeMismatch("container", tag, d.head-1)
	}
}

// SkipContainer advances the decoder past an entire container (tag,
// length prefix, type hash, and all children) without inspecting it. It
// is the path a reader uninterested in a container's contents takes.
func (d *Decoder) SkipContainer() error {
	pos := d.head
	t, err := d.ReadTag()
	if err != nil {
		return err
	}
	total, err := d.containerLen(t)
	if err != nil {
		d.head = pos
		return err
	}
	if err := d.probe(total); err != nil {
		return err
	}
	d.head += total
	return nil
}
