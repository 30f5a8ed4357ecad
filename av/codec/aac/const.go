// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aac

// AOT_ESCAPE_VALUE 不是合法的 audio object type，
// 而是扩展编码的标记：其后 6 位给出 AOT-32。
const AOT_ESCAPE_VALUE = 0x1f

// MaxObjectType 可表示的最大 audio object type
const MaxObjectType = 95

// Audio Object Type
// ISO/IEC 14496-3 Table 1.17
const (
	AOT_NULL                               ObjectType = 0  // Null
	AOT_AAC_MAIN                           ObjectType = 1  // AAC main
	AOT_AAC_LC                             ObjectType = 2  // AAC LC
	AOT_AAC_SSR                            ObjectType = 3  // AAC SSR
	AOT_AAC_LTP                            ObjectType = 4  // AAC LTP
	AOT_SBR                                ObjectType = 5  // SBR
	AOT_AAC_SCALABLE                       ObjectType = 6  // AAC Scalable
	AOT_TWIN_VQ                            ObjectType = 7  // TwinVQ
	AOT_CELP                               ObjectType = 8  // CELP
	AOT_HVXC                               ObjectType = 9  // HVXC
	AOT_TTSI                               ObjectType = 12 // TTSI
	AOT_MAIN_SYNTHETIC                     ObjectType = 13 // Main synthetic
	AOT_WAVETABLE_SYNTHESIS                ObjectType = 14 // Wavetable synthesis
	AOT_GENERAL_MIDI                       ObjectType = 15 // General MIDI
	AOT_ALGORITHMIC_SYNTHESIS_AND_AUDIO_FX ObjectType = 16 // Algorithmic Synthesis and Audio FX
	AOT_ER_AAC_LC                          ObjectType = 17 // ER AAC LC
	AOT_ER_AAC_LTP                         ObjectType = 19 // ER AAC LTP
	AOT_ER_AAC_SCALABLE                    ObjectType = 20 // ER AAC Scalable
	AOT_ER_TWIN_VQ                         ObjectType = 21 // ER TwinVQ
	AOT_ER_BSAC                            ObjectType = 22 // ER BSAC
	AOT_ER_AAC_LD                          ObjectType = 23 // ER AAC LD
	AOT_ER_CELP                            ObjectType = 24 // ER CELP
	AOT_ER_HVXC                            ObjectType = 25 // ER HVXC
	AOT_ER_HILN                            ObjectType = 26 // ER HILN
	AOT_ER_PARAMETRIC                      ObjectType = 27 // ER Parametric
	AOT_SSC                                ObjectType = 28 // SSC
	AOT_PS                                 ObjectType = 29 // PS
	AOT_MPEG_SURROUND                      ObjectType = 30 // MPEG Surround
	// 31 为 escape，不定义
	AOT_LAYER1           ObjectType = 32 // Layer-1
	AOT_LAYER3           ObjectType = 34 // Layer-3
	AOT_DST              ObjectType = 35 // DST
	AOT_ALS              ObjectType = 36 // ALS
	AOT_SLS              ObjectType = 37 // SLS
	AOT_SLS_NON_CORE     ObjectType = 38 // SLS non-core
	AOT_ER_AAC_ELD       ObjectType = 39 // ER AAC ELD
	AOT_SMR_SIMPLE       ObjectType = 40 // SMR Simple
	AOT_SMR_MAIN         ObjectType = 41 // SMR Main
	AOT_USAC             ObjectType = 42 // Unified Speech and Audio Coding
	AOT_SAOC             ObjectType = 43 // Spatial Audio Object Coding
	AOT_LD_MPEG_SURROUND ObjectType = 44 // Low Delay MPEG Surround
	AOT_SAOC_DE          ObjectType = 45 // Spatial Audio Object Coding Dialogue Enhancement
	AOT_AUDIO_SYNC       ObjectType = 46 // Audio synchronization tool
)

type objectTypeEntry struct {
	aot  ObjectType
	name string
	desc string
}

// objectTypeEntries 已命名的 AOT，按编码升序
var objectTypeEntries = [...]objectTypeEntry{
	{AOT_NULL, "NULL", "Null"},
	{AOT_AAC_MAIN, "AAC_MAIN", "AAC main"},
	{AOT_AAC_LC, "AAC_LC", "AAC LC"},
	{AOT_AAC_SSR, "AAC_SSR", "AAC SSR"},
	{AOT_AAC_LTP, "AAC_LTP", "AAC LTP"},
	{AOT_SBR, "SBR", "SBR"},
	{AOT_AAC_SCALABLE, "AAC_SCALABLE", "AAC Scalable"},
	{AOT_TWIN_VQ, "TWIN_VQ", "TwinVQ"},
	{AOT_CELP, "CELP", "CELP"},
	{AOT_HVXC, "HVXC", "HVXC"},
	{AOT_TTSI, "TTSI", "TTSI"},
	{AOT_MAIN_SYNTHETIC, "MAIN_SYNTHETIC", "Main synthetic"},
	{AOT_WAVETABLE_SYNTHESIS, "WAVETABLE_SYNTHESIS", "Wavetable synthesis"},
	{AOT_GENERAL_MIDI, "GENERAL_MIDI", "General MIDI"},
	{AOT_ALGORITHMIC_SYNTHESIS_AND_AUDIO_FX, "ALGORITHMIC_SYNTHESIS_AND_AUDIO_FX", "Algorithmic Synthesis and Audio FX"},
	{AOT_ER_AAC_LC, "ER_AAC_LC", "ER AAC LC"},
	{AOT_ER_AAC_LTP, "ER_AAC_LTP", "ER AAC LTP"},
	{AOT_ER_AAC_SCALABLE, "ER_AAC_SCALABLE", "ER AAC Scalable"},
	{AOT_ER_TWIN_VQ, "ER_TWIN_VQ", "ER TwinVQ"},
	{AOT_ER_BSAC, "ER_BSAC", "ER BSAC"},
	{AOT_ER_AAC_LD, "ER_AAC_LD", "ER AAC LD"},
	{AOT_ER_CELP, "ER_CELP", "ER CELP"},
	{AOT_ER_HVXC, "ER_HVXC", "ER HVXC"},
	{AOT_ER_HILN, "ER_HILN", "ER HILN"},
	{AOT_ER_PARAMETRIC, "ER_PARAMETRIC", "ER Parametric"},
	{AOT_SSC, "SSC", "SSC"},
	{AOT_PS, "PS", "PS"},
	{AOT_MPEG_SURROUND, "MPEG_SURROUND", "MPEG Surround"},
	{AOT_LAYER1, "LAYER1", "Layer-1"},
	{AOT_LAYER3, "LAYER3", "Layer-3"},
	{AOT_DST, "DST", "DST"},
	{AOT_ALS, "ALS", "ALS"},
	{AOT_SLS, "SLS", "SLS"},
	{AOT_SLS_NON_CORE, "SLS_NON_CORE", "SLS non-core"},
	{AOT_ER_AAC_ELD, "ER_AAC_ELD", "ER AAC ELD"},
	{AOT_SMR_SIMPLE, "SMR_SIMPLE", "SMR Simple"},
	{AOT_SMR_MAIN, "SMR_MAIN", "SMR Main"},
	{AOT_USAC, "USAC", "Unified Speech and Audio Coding"},
	{AOT_SAOC, "SAOC", "Spatial Audio Object Coding"},
	{AOT_LD_MPEG_SURROUND, "LD_MPEG_SURROUND", "Low Delay MPEG Surround"},
	{AOT_SAOC_DE, "SAOC_DE", "Spatial Audio Object Coding Dialogue Enhancement"},
	{AOT_AUDIO_SYNC, "AUDIO_SYNC", "Audio synchronization tool"},
}

// objectTypeTable 按编码索引，保留值为 nil；初始化后只读
var objectTypeTable = func() (table [MaxObjectType + 1]*objectTypeEntry) {
	for i := range objectTypeEntries {
		e := &objectTypeEntries[i]
		table[e.aot] = e
	}
	return
}()
