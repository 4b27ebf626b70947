package vlcplayer

import (
	"fmt"
	"strings"
)

// Decoder identifies a libVLC decoder module for the :codec= media option.
type Decoder int

const (
	DecoderUnknown       Decoder = iota
	DecoderMediaCodecNDK         // Android MediaCodec through the NDK
	DecoderMediaCodecJNI         // Android MediaCodec through JNI
	DecoderVideoToolbox          // Apple VideoToolbox
	DecoderVAAPI                 // Linux VA-API through avcodec
	DecoderAVCodec               // FFmpeg software decoding
	DecoderAll                   // Any remaining module, by priority
	decoderCount
)

// decoderMeta contains static metadata about a decoder module.
type decoderMeta struct {
	Name     string
	Hardware bool
}

// Static metadata table - indexed by Decoder.
var decoderInfo = [decoderCount]decoderMeta{
	DecoderUnknown:       {"unknown", false},
	DecoderMediaCodecNDK: {"mediacodec_ndk", true},
	DecoderMediaCodecJNI: {"mediacodec_jni", true},
	DecoderVideoToolbox:  {"videotoolbox", true},
	DecoderVAAPI:         {"vaapi", true},
	DecoderAVCodec:       {"avcodec", false},
	DecoderAll:           {"all", false},
}

// String returns the libVLC module name.
func (d Decoder) String() string {
	if d <= DecoderUnknown || d >= decoderCount {
		return "unknown"
	}
	return decoderInfo[d].Name
}

// Hardware returns true if the module decodes on dedicated hardware.
func (d Decoder) Hardware() bool {
	if d <= DecoderUnknown || d >= decoderCount {
		return false
	}
	return decoderInfo[d].Hardware
}

// ParseDecoder returns the Decoder for a libVLC module name.
func ParseDecoder(name string) (Decoder, error) {
	name = strings.TrimSpace(name)
	for d := DecoderUnknown + 1; d < decoderCount; d++ {
		if decoderInfo[d].Name == name {
			return d, nil
		}
	}
	return DecoderUnknown, fmt.Errorf("unknown decoder module %q", name)
}

// DecoderList is an ordered decoder preference.
type DecoderList []Decoder

// ParseDecoderList parses module names in preference order.
func ParseDecoderList(names []string) (DecoderList, error) {
	list := make(DecoderList, 0, len(names))
	for _, n := range names {
		d, err := ParseDecoder(n)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, nil
}

// String renders the list as libVLC expects it: "a,b,c".
func (l DecoderList) String() string {
	names := make([]string, len(l))
	for i, d := range l {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}

// PreferHardware returns true if the first choice is a hardware decoder.
func (l DecoderList) PreferHardware() bool {
	return len(l) > 0 && l[0].Hardware()
}

// Option returns the :codec= media option, or "" for an empty list.
func (l DecoderList) Option() string {
	if len(l) == 0 {
		return ""
	}
	return ":codec=" + l.String()
}
