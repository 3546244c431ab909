package gbwt

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// MergeParameters tunes the merge orchestrator's buffering and
// parallelism. The core does not implement the
// orchestrator itself -- it is an external collaborator -- but the
// parameter struct is part of its input contract, so it lives here.
type MergeParameters struct {
	PosBufferSize    uint64 `koanf:"pos_buffer_size_mb"`
	ThreadBufferSize uint64 `koanf:"thread_buffer_size_mb"`
	MergeBuffers     uint64 `koanf:"merge_buffers"`
	ChunkSize        uint64 `koanf:"chunk_size"`
	MergeJobs        uint64 `koanf:"merge_jobs"`
}

const megabyte = uint64(1) << 20

const (
	defaultPosBufferSize    = 64
	defaultThreadBufferSize = 256
	defaultMergeBuffers     = 6
	defaultChunkSize        = 1
	defaultMergeJobs        = 4

	maxBufferSize   = 16384
	maxMergeBuffers = 16
	maxMergeJobs    = 16
)

// DefaultMergeParameters returns the merge parameters a build uses when
// no config file or environment override is present.
func DefaultMergeParameters() MergeParameters {
	return MergeParameters{
		PosBufferSize:    defaultPosBufferSize,
		ThreadBufferSize: defaultThreadBufferSize,
		MergeBuffers:     defaultMergeBuffers,
		ChunkSize:        defaultChunkSize,
		MergeJobs:        defaultMergeJobs,
	}
}

// PosBufferPositions returns the position-buffer capacity in edge_type
// entries (16 bytes each: a Node plus a uint64 offset).
func (p MergeParameters) PosBufferPositions() uint64 {
	const edgeBytes = 16
	return (p.PosBufferSize * megabyte) / edgeBytes
}

// ThreadBufferBytes returns the per-thread buffer capacity in bytes.
func (p MergeParameters) ThreadBufferBytes() uint64 {
	return p.ThreadBufferSize * megabyte
}

// clamp bounds user-supplied values so a bad config file cannot request
// unbounded buffers.
func (p *MergeParameters) clamp() {
	if p.PosBufferSize > maxBufferSize {
		p.PosBufferSize = maxBufferSize
	}
	if p.ThreadBufferSize > maxBufferSize {
		p.ThreadBufferSize = maxBufferSize
	}
	if p.MergeBuffers > maxMergeBuffers {
		p.MergeBuffers = maxMergeBuffers
	}
	if p.MergeJobs > maxMergeJobs {
		p.MergeJobs = maxMergeJobs
	}
	if p.ChunkSize == 0 {
		p.ChunkSize = 1
	}
}

// LoadMergeParameters reads MergeParameters from an optional YAML config
// file layered under GBWT_MERGE_* environment overrides, starting from
// DefaultMergeParameters for anything neither source sets.
func LoadMergeParameters(configPath string) (MergeParameters, error) {
	k := koanf.New(".")
	params := DefaultMergeParameters()

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return params, errors.Wrapf(err, "gbwt: loading merge parameters from %s", configPath)
		}
	}
	envProvider := env.Provider("GBWT_MERGE_", ".", func(s string) string {
		trimmed := strings.TrimPrefix(s, "GBWT_MERGE_")
		return strings.ToLower(trimmed)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return params, errors.Wrap(err, "gbwt: loading merge parameters from environment")
	}

	if err := k.Unmarshal("", &params); err != nil {
		return params, errors.Wrap(err, "gbwt: unmarshalling merge parameters")
	}
	params.clamp()
	return params, nil
}
