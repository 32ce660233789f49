package preset

import (
	"fmt"

	"github.com/cwbudde/algo-stim/stim"
)

type buildFunc func(*stim.Synth, *Stimulus) (stim.Signal, error)

var builders = map[string]buildFunc{
	"pure_tone":          buildPureTone,
	"binaural_pure_tone": buildBinauralPureTone,
	"am_tone":            buildAMTone,
	"fm_tone":            buildFMTone,
	"exp_sin_fm_tone":    buildExpSinFMTone,
	"complex_tone":       buildComplexTone,
	"broadband_noise":    buildBroadbandNoise,
	"steep_noise":        buildSteepNoise,
	"pink_noise":         buildPinkNoise,
	"harm_complex_noise": buildHarmComplexNoise,
	"chirp":              buildChirp,
	"glide":              buildGlide,
	"asynch_chord":       buildAsynchChord,
	"huggins":            buildHuggins,
	"simple_dichotic":    buildSimpleDichotic,
}

// Shared defaults for absent optional fields.
const (
	defLevelDB    = 60.0
	defDurationMs = 500.0
	defRampMs     = 10.0
)

func (st *Stimulus) channel() (stim.Channel, error) {
	if st.Channel == nil {
		return stim.ChannelBoth, nil
	}
	return stim.ParseChannel(*st.Channel)
}

func (st *Stimulus) need(name string, p *float64) (float64, error) {
	if p == nil {
		return 0, fmt.Errorf("stimulus %q: missing field %q", st.Kind, name)
	}
	return *p, nil
}

func buildPureTone(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	freq, err := st.need("frequency_hz", st.FrequencyHz)
	if err != nil {
		return stim.Signal{}, err
	}
	return s.PureTone(freq, fl(st.PhaseRad, 0), fl(st.LevelDB, defLevelDB),
		fl(st.DurationMs, defDurationMs), fl(st.RampMs, defRampMs), c)
}

func buildBinauralPureTone(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	freq, err := st.need("frequency_hz", st.FrequencyHz)
	if err != nil {
		return stim.Signal{}, err
	}
	itdRef, err := stim.ParseRefChannel(str(st.ITDRef, ""))
	if err != nil {
		return stim.Signal{}, err
	}
	ildRef, err := stim.ParseRefChannel(str(st.ILDRef, ""))
	if err != nil {
		return stim.Signal{}, err
	}
	return s.BinauralPureTone(freq, fl(st.PhaseRad, 0), fl(st.LevelDB, defLevelDB),
		fl(st.DurationMs, defDurationMs), fl(st.RampMs, defRampMs), c,
		fl(st.ITDMicros, 0), itdRef, fl(st.ILDDB, 0), ildRef)
}

func buildAMTone(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	freq, err := st.need("frequency_hz", st.FrequencyHz)
	if err != nil {
		return stim.Signal{}, err
	}
	modFreq, err := st.need("mod_frequency_hz", st.ModFrequencyHz)
	if err != nil {
		return stim.Signal{}, err
	}
	return s.AMTone(freq, modFreq, fl(st.ModDepth, 1), fl(st.PhaseRad, 0),
		fl(st.LevelDB, defLevelDB), fl(st.DurationMs, defDurationMs),
		fl(st.RampMs, defRampMs), c)
}

func buildFMTone(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	freq, err := st.need("frequency_hz", st.FrequencyHz)
	if err != nil {
		return stim.Signal{}, err
	}
	modFreq, err := st.need("mod_frequency_hz", st.ModFrequencyHz)
	if err != nil {
		return stim.Signal{}, err
	}
	return s.FMTone(freq, modFreq, fl(st.ModIndex, 1), fl(st.PhaseRad, 0),
		fl(st.LevelDB, defLevelDB), fl(st.DurationMs, defDurationMs),
		fl(st.RampMs, defRampMs), c)
}

func buildExpSinFMTone(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	freq, err := st.need("frequency_hz", st.FrequencyHz)
	if err != nil {
		return stim.Signal{}, err
	}
	modFreq, err := st.need("mod_frequency_hz", st.ModFrequencyHz)
	if err != nil {
		return stim.Signal{}, err
	}
	deltaCents, err := st.need("delta_cents", st.DeltaCents)
	if err != nil {
		return stim.Signal{}, err
	}
	return s.ExpSinFMTone(freq, modFreq, deltaCents, fl(st.PhaseRad, 0),
		fl(st.LevelDB, defLevelDB), fl(st.DurationMs, defDurationMs),
		fl(st.RampMs, defRampMs), c)
}

func buildComplexTone(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	f0, err := st.need("f0_hz", st.F0Hz)
	if err != nil {
		return stim.Signal{}, err
	}
	harmPhase, err := stim.ParseHarmPhase(str(st.HarmPhase, "Sine"))
	if err != nil {
		return stim.Signal{}, err
	}
	return s.ComplexTone(f0, harmPhase, in(st.LowHarm, 1), in(st.HighHarm, 10),
		fl(st.StretchPct, 0), fl(st.LevelDB, defLevelDB),
		fl(st.DurationMs, defDurationMs), fl(st.RampMs, defRampMs), c)
}

func buildBroadbandNoise(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	return s.BroadbandNoise(fl(st.LevelDB, 30), fl(st.DurationMs, defDurationMs),
		fl(st.RampMs, defRampMs), c)
}

func buildSteepNoise(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	lo, err := st.need("low_freq_hz", st.LowFreqHz)
	if err != nil {
		return stim.Signal{}, err
	}
	hi, err := st.need("high_freq_hz", st.HighFreqHz)
	if err != nil {
		return stim.Signal{}, err
	}
	return s.SteepNoise(lo, hi, fl(st.LevelDB, defLevelDB),
		fl(st.DurationMs, defDurationMs), fl(st.RampMs, defRampMs), c)
}

func buildPinkNoise(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	lo, err := st.need("low_freq_hz", st.LowFreqHz)
	if err != nil {
		return stim.Signal{}, err
	}
	hi, err := st.need("high_freq_hz", st.HighFreqHz)
	if err != nil {
		return stim.Signal{}, err
	}
	return s.PinkNoiseFromSin(fl(st.LevelDB, 30), lo, hi,
		fl(st.SpacingCents, 10), fl(st.DurationMs, defDurationMs),
		fl(st.RampMs, defRampMs), c)
}

func buildHarmComplexNoise(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	f0, err := st.need("f0_hz", st.F0Hz)
	if err != nil {
		return stim.Signal{}, err
	}
	return s.HarmComplexFromNoise(f0, in(st.LowHarm, 1), in(st.HighHarm, 10),
		fl(st.LevelDB, defLevelDB), fl(st.BandwidthHz, 100),
		fl(st.DurationMs, defDurationMs), fl(st.RampMs, defRampMs), c)
}

func buildChirp(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	freq, err := st.need("frequency_hz", st.FrequencyHz)
	if err != nil {
		return stim.Signal{}, err
	}
	rate, err := st.need("sweep_rate", st.SweepRate)
	if err != nil {
		return stim.Signal{}, err
	}
	kind, err := stim.ParseSweepKind(str(st.Sweep, "Linear"))
	if err != nil {
		return stim.Signal{}, err
	}
	return s.Chirp(freq, kind, rate, fl(st.LevelDB, defLevelDB),
		fl(st.DurationMs, defDurationMs), fl(st.PhaseRad, 0),
		fl(st.RampMs, defRampMs), c)
}

func buildGlide(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	freq, err := st.need("frequency_hz", st.FrequencyHz)
	if err != nil {
		return stim.Signal{}, err
	}
	excursion, err := st.need("excursion_cents", st.ExcursionCents)
	if err != nil {
		return stim.Signal{}, err
	}
	kind, err := stim.ParseSweepKind(str(st.Sweep, "Exponential"))
	if err != nil {
		return stim.Signal{}, err
	}
	return s.Glide(freq, kind, excursion, fl(st.LevelDB, defLevelDB),
		fl(st.DurationMs, defDurationMs), fl(st.PhaseRad, 0),
		fl(st.RampMs, defRampMs), c)
}

func buildAsynchChord(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	c, err := st.channel()
	if err != nil {
		return stim.Signal{}, err
	}
	if len(st.FrequenciesHz) == 0 {
		return stim.Signal{}, fmt.Errorf("stimulus %q: missing field %q", st.Kind, "frequencies_hz")
	}
	levels := st.LevelsDB
	if levels == nil {
		levels = make([]float64, len(st.FrequenciesHz))
		for i := range levels {
			levels[i] = defLevelDB
		}
	}
	phases := st.PhasesRad
	if phases == nil {
		phases = make([]float64, len(st.FrequenciesHz))
	}
	return s.AsynchChord(st.FrequenciesHz, levels, phases,
		fl(st.DurationMs, defDurationMs), fl(st.RampMs, defRampMs), c,
		fl(st.SOAMs, 0))
}

func buildHuggins(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	f0, err := st.need("f0_hz", st.F0Hz)
	if err != nil {
		return stim.Signal{}, err
	}
	phaseRel, err := stim.ParseDichoticPhase(str(st.PhaseRelationship, "NoSpi"))
	if err != nil {
		return stim.Signal{}, err
	}
	noise, err := stim.ParseNoiseColor(str(st.NoiseColor, "White"))
	if err != nil {
		return stim.Signal{}, err
	}
	return s.Huggins(stim.HugginsParams{
		F0:                f0,
		LowHarm:           in(st.LowHarm, 1),
		HighHarm:          in(st.HighHarm, 3),
		SpectrumLevel:     fl(st.LevelDB, 30),
		BandwidthHz:       fl(st.BandwidthHz, 80),
		PhaseRelationship: phaseRel,
		Noise:             noise,
		DurationMs:        fl(st.DurationMs, defDurationMs),
		RampMs:            fl(st.RampMs, defRampMs),
	})
}

func buildSimpleDichotic(s *stim.Synth, st *Stimulus) (stim.Signal, error) {
	f0, err := st.need("f0_hz", st.F0Hz)
	if err != nil {
		return stim.Signal{}, err
	}
	lo, err := st.need("low_freq_hz", st.LowFreqHz)
	if err != nil {
		return stim.Signal{}, err
	}
	hi, err := st.need("high_freq_hz", st.HighFreqHz)
	if err != nil {
		return stim.Signal{}, err
	}
	phaseRel, err := stim.ParseDichoticPhase(str(st.PhaseRelationship, "NoSpi"))
	if err != nil {
		return stim.Signal{}, err
	}
	diff, err := stim.ParseDichoticDifference(str(st.Difference, "IPD"))
	if err != nil {
		return stim.Signal{}, err
	}
	return s.SimpleDichotic(stim.DichoticParams{
		F0:                f0,
		LowHarm:           in(st.LowHarm, 1),
		HighHarm:          in(st.HighHarm, 3),
		CmpLevel:          fl(st.LevelDB, 30),
		LowFreq:           lo,
		HighFreq:          hi,
		SpacingCents:      fl(st.SpacingCents, 10),
		BandwidthCents:    fl(st.BandwidthCents, 100),
		PhaseRelationship: phaseRel,
		Difference:        diff,
		ITDMicros:         fl(st.ITDMicros, 0),
		IPD:               fl(st.IPDRad, 0),
		BandCmpLevel:      fl(st.BandLevelDB, fl(st.LevelDB, 30)),
		DurationMs:        fl(st.DurationMs, defDurationMs),
		RampMs:            fl(st.RampMs, defRampMs),
	})
}
