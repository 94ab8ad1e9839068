package console

// Windows consoles report extended keys as two code units: a 0 or 224
// sentinel followed by the key's scan code. The pair is combined into
// first + second*256 and translated into the VT sequence the rest of the
// decoder understands.
const (
	scanPrefixKeypad   = 0x00
	scanPrefixExtended = 0xe0
)

// scanCodeKeys names the extended scan codes this package understands.
var scanCodeKeys = map[int]Key{
	59:  "f1",
	60:  "f2",
	61:  "f3",
	62:  "f4",
	63:  "f5",
	64:  "f6",
	65:  "f7",
	66:  "f8",
	67:  "f9",
	68:  "f10",
	133: "f11",
	134: "f12",
	71:  KeyHome,
	72:  KeyUp,
	73:  KeyPageUp,
	75:  KeyLeft,
	77:  KeyRight,
	79:  KeyEnd,
	80:  KeyDown,
	81:  KeyPageDown,
	82:  KeyInsert,
	83:  KeyDelete,
}

// scanCodes maps combined 16-bit scan codes to VT sequences. Both
// sentinels are accepted for every key: the keypad sends 0, the grey
// navigation block sends 224.
var scanCodes = buildScanCodes()

func buildScanCodes() map[int]string {
	codes := make(map[int]string, len(scanCodeKeys)*2)
	for scan, key := range scanCodeKeys {
		seq := keySequences[key]
		codes[scanPrefixKeypad+scan*256] = seq
		codes[scanPrefixExtended+scan*256] = seq
	}
	return codes
}

func isScanPrefix(b byte) bool {
	return b == scanPrefixKeypad || b == scanPrefixExtended
}

// decodeScanCode reads one keystroke from a getch-style source. Plain code
// units are returned as-is; sentinel pairs go through scanCodes and fall
// back to the two raw units when the code is unknown.
func decodeScanCode(next func() (byte, error)) (string, error) {
	first, err := next()
	if err != nil {
		return "", err
	}
	if !isScanPrefix(first) {
		return string([]byte{first}), nil
	}

	second, err := next()
	if err != nil {
		return "", err
	}
	code := int(first) + int(second)*256
	if seq, ok := scanCodes[code]; ok {
		return seq, nil
	}
	return string([]byte{first, second}), nil
}
