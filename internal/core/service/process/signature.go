package process

import (
	"crypto/md5"
	"encoding/hex"
	"med-voice/internal/core/domain"
	"strconv"
	"strings"
	"time"
)

// Signature computes a stable fingerprint for a processing request. When the
// caller supplied both a client id and a request id the signature hashes those
// two alone, making the fingerprint caller-controlled and exact. Otherwise it
// falls back to owner, file size and a coarse time bucket: same-owner,
// same-size requests inside one bucket collide. The imprecision is deliberate;
// it trades false positives for protection against client retry storms.
func Signature(inputs domain.SignatureInputs, now time.Time, bucket time.Duration) string {
	if inputs.ClientID != "" && inputs.RequestID != "" {
		return md5Hex(inputs.ClientID + "-" + inputs.RequestID)
	}

	owner := "anonymous"
	if inputs.OwnerID != nil && *inputs.OwnerID != "" {
		owner = *inputs.OwnerID
	}

	bucketSeconds := int64(bucket / time.Second)
	if bucketSeconds <= 0 {
		bucketSeconds = 5
	}
	window := now.Unix() / bucketSeconds * bucketSeconds

	components := []string{
		owner,
		strconv.FormatInt(inputs.FileSize, 10),
		inputs.ClientID,
		inputs.RequestID,
		strconv.FormatInt(window, 10),
	}
	return md5Hex(strings.Join(components, "-"))
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
