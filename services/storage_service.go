package services

import (
	"errors"
	"math"
)

// ErrInvalidStorageInput is returned when a calculator parameter is not positive.
var ErrInvalidStorageInput = errors.New("storage calculator parameters must be positive")

// StorageEstimate is the output of the CCTV recording-capacity calculator.
type StorageEstimate struct {
	RequiredTB  float64 `json:"required_tb"`
	SuggestedTB int     `json:"suggested_tb"`
}

// EstimateStorage sizes the recorder disk for a camera installation. The
// bitrate model matches the shop's rule of thumb for H.265: a 2MP stream at
// 15 FPS runs about 2048 kbps, scaling linearly with megapixels and frame
// rate. Suggested capacity rounds the requirement up to the next even
// terabyte, which is how surveillance drives are sold.
func EstimateStorage(channels, resolutionMP, days, fps int) (StorageEstimate, error) {
	if channels <= 0 || resolutionMP <= 0 || days <= 0 || fps <= 0 {
		return StorageEstimate{}, ErrInvalidStorageInput
	}

	baseBitrate := float64(resolutionMP) * 1024 * (float64(fps) / 15)
	totalGigabytes := (float64(channels) * baseBitrate * 3600 * 24 * float64(days)) / (8 * 1024 * 1024)
	totalTerabytes := totalGigabytes / 1024

	required := math.Round(totalTerabytes*100) / 100
	suggested := int(math.Ceil(required/2)) * 2

	return StorageEstimate{RequiredTB: required, SuggestedTB: suggested}, nil
}

// BandwidthReference is one row of the per-camera stream-rate table.
type BandwidthReference struct {
	Resolution string `json:"resolution"`
	H264       string `json:"h264"`
	H265       string `json:"h265"`
}

// BandwidthTable returns the per-camera bandwidth estimates shown in the
// tools panel.
func BandwidthTable() []BandwidthReference {
	return []BandwidthReference{
		{Resolution: "1080p / 15 FPS", H264: "4 Mbps", H265: "2 Mbps"},
		{Resolution: "4MP / 15 FPS", H264: "8 Mbps", H265: "4 Mbps"},
		{Resolution: "4K / 15 FPS", H264: "16 Mbps", H265: "8 Mbps"},
	}
}
