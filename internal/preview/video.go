package preview

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os/exec"
	"strconv"
)

// Frames are streamed out of ffmpeg as concatenated PNGs so we can stop
// reading as soon as a representative frame shows up.
func ffmpegArgs(path string, frames int) []string {
	return []string{
		"-i", path,
		"-frames:v", strconv.Itoa(frames),
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	}
}

func (r *Resolver) resolveVideo(path string, size int) (*Thumbnail, error) {
	cmd := exec.Command("ffmpeg", ffmpegArgs(path, r.limits.VideoScanFrames)...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIoFailed, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: ffmpeg: %v", ErrIoFailed, err)
	}
	frame, scanErr := r.scanFrames(bufio.NewReader(stdout))
	if frame != nil {
		// stop decoding the rest of the stream once we have our frame
		stdout.Close()
	}
	cmd.Wait()
	if scanErr != nil {
		return nil, scanErr
	}
	return &Thumbnail{
		Path:  path,
		Kind:  KindImage,
		Image: scaleToBound(frame, size),
	}, nil
}

// scanFrames decodes PNG frames off the stream until one passes the
// blank-frame heuristic or the stream ends.
func (r *Resolver) scanFrames(br *bufio.Reader) (image.Image, error) {
	decoded := 0
	for {
		img, err := png.Decode(br)
		if err != nil {
			if decoded == 0 && err != io.EOF && err != io.ErrUnexpectedEOF {
				return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
			}
			return nil, ErrNoRepresentativeFrame
		}
		decoded++
		if isRepresentative(img, r.limits.VideoMinMean, r.limits.VideoMinStdDev) {
			return img, nil
		}
	}
}

// isRepresentative rejects near-black and near-uniform frames. Thresholds
// are on the 0..255 luma scale.
func isRepresentative(img image.Image, minMean, minStdDev float64) bool {
	mean, stddev := frameStats(img)
	return mean > minMean && stddev > minStdDev
}

// frameStats returns the mean and standard deviation of pixel luma.
func frameStats(img image.Image) (mean, stddev float64) {
	b := img.Bounds()
	n := float64(b.Dx() * b.Dy())
	if n == 0 {
		return 0, 0
	}
	var sum, sumSq float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			// Rec. 601 luma on the 0..255 scale
			l := (0.299*float64(cr) + 0.587*float64(cg) + 0.114*float64(cb)) / 257.0
			sum += l
			sumSq += l * l
		}
	}
	mean = sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	stddev = math.Sqrt(variance)
	return mean, stddev
}
