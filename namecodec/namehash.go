package namecodec

// Namehash computes the node identifying the name that starts at offset,
// combining label hashes bottom-up until the terminator (whose node is
// ZeroNode) is reached. Hashed-label literals are accepted.
func Namehash(name []byte, offset int) (Node, error) {
	labelHash, next, size, _, err := ReadLabel(name, offset, true)
	if err != nil {
		return ZeroNode, err
	}
	if size == 0 {
		return ZeroNode, nil
	}
	parent, err := Namehash(name, next)
	if err != nil {
		return ZeroNode, err
	}
	return Combine(parent, labelHash), nil
}

// MatchSuffix walks the labels from offset to the terminator and reports
// whether any suffix of them hashes to target. node is the full node for the
// name at offset. On a match, matchOffset is where the matched suffix begins
// and prevOffset is the label immediately before it (prevOffset == offset
// when the whole remainder matched). The shortest matching suffix wins.
func MatchSuffix(name []byte, offset int, target Node) (matched bool, node Node, prevOffset, matchOffset int, err error) {
	node, matched, matchOffset, err = matchSuffix(name, offset, target)
	if err != nil || !matched {
		return false, node, 0, 0, err
	}
	prevOffset = offset
	for pos := offset; pos != matchOffset; {
		_, next, _, _, rerr := ReadLabel(name, pos, true)
		if rerr != nil {
			return false, ZeroNode, 0, 0, rerr
		}
		prevOffset = pos
		pos = next
	}
	return true, node, prevOffset, matchOffset, nil
}

func matchSuffix(name []byte, offset int, target Node) (node Node, matched bool, matchOffset int, err error) {
	labelHash, next, size, _, err := ReadLabel(name, offset, true)
	if err != nil {
		return ZeroNode, false, 0, err
	}
	if size == 0 {
		if target.IsZero() {
			return ZeroNode, true, offset, nil
		}
		return ZeroNode, false, 0, nil
	}
	parent, matched, matchOffset, err := matchSuffix(name, next, target)
	if err != nil {
		return ZeroNode, false, 0, err
	}
	node = Combine(parent, labelHash)
	if matched {
		return node, true, matchOffset, nil
	}
	if node == target {
		return node, true, offset, nil
	}
	return node, false, 0, nil
}
