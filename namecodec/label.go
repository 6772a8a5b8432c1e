package namecodec

import "xdao.co/chainreg/internal/hexutil"

// ReadLabel reads the single label starting at offset.
//
// It returns the label's hash, the offset of the next label, the label's wire
// size and whether the label was a hashed literal. A zero-size label is the
// terminator: its hash is ZeroNode and next points one past it.
//
// When allowHashed is set and the label is exactly HashedLabelSize bytes
// bracketed by '[' and ']', the 64 inner hex digits are parsed right-aligned
// into the 32-byte hash; an all-zero result collides with the terminator
// value and is rejected.
func ReadLabel(name []byte, offset int, allowHashed bool) (labelHash Node, next, size int, wasHashed bool, err error) {
	if offset < 0 || offset >= len(name) {
		return ZeroNode, 0, 0, false, malformed("readLabel", offset, "offset out of range")
	}
	size = int(name[offset])
	next = offset + 1 + size
	if next > len(name) {
		return ZeroNode, 0, 0, false, malformed("readLabel", offset, "label overruns buffer")
	}
	if size == 0 {
		return ZeroNode, next, 0, false, nil
	}
	label := name[offset+1 : next]
	if allowHashed && size == HashedLabelSize && label[0] == '[' && label[size-1] == ']' {
		if err := hexutil.ParseInto(labelHash[:], string(label[1:size-1])); err != nil {
			return ZeroNode, 0, 0, false, malformed("readLabel", offset+1, "invalid hashed label: "+err.Error())
		}
		if labelHash.IsZero() {
			return ZeroNode, 0, 0, false, malformed("readLabel", offset+1, "hashed label is the zero value")
		}
		return labelHash, next, size, true, nil
	}
	return LabelHash(label), next, size, false, nil
}

// PrevLabel returns the offset of the label whose end is offset, found by
// walking the chain from the start of the buffer. Fails when offset is zero,
// past the buffer, or does not land on a label boundary.
func PrevLabel(name []byte, offset int) (int, error) {
	if offset <= 0 || offset > len(name) {
		return 0, malformed("prevLabel", offset, "offset out of range")
	}
	pos := 0
	for {
		_, next, size, _, err := ReadLabel(name, pos, true)
		if err != nil {
			return 0, err
		}
		if next == offset {
			return pos, nil
		}
		if size == 0 || next > offset {
			return 0, malformed("prevLabel", offset, "no label ends at offset")
		}
		pos = next
	}
}
