// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dxgi

// Format is a DXGI_FORMAT value.
type Format uint32

const (
	Format_UNKNOWN                    Format = 0
	Format_R32G32B32A32_TYPELESS      Format = 1
	Format_R32G32B32A32_FLOAT         Format = 2
	Format_R32G32B32A32_UINT          Format = 3
	Format_R32G32B32A32_SINT          Format = 4
	Format_R32G32B32_TYPELESS         Format = 5
	Format_R32G32B32_FLOAT            Format = 6
	Format_R32G32B32_UINT             Format = 7
	Format_R32G32B32_SINT             Format = 8
	Format_R16G16B16A16_TYPELESS      Format = 9
	Format_R16G16B16A16_FLOAT         Format = 10
	Format_R16G16B16A16_UNORM         Format = 11
	Format_R16G16B16A16_UINT          Format = 12
	Format_R16G16B16A16_SNORM         Format = 13
	Format_R16G16B16A16_SINT          Format = 14
	Format_R32G32_TYPELESS            Format = 15
	Format_R32G32_FLOAT               Format = 16
	Format_R32G32_UINT                Format = 17
	Format_R32G32_SINT                Format = 18
	Format_R32G8X24_TYPELESS          Format = 19
	Format_D32_FLOAT_S8X24_UINT       Format = 20
	Format_R32_FLOAT_X8X24_TYPELESS   Format = 21
	Format_X32_TYPELESS_G8X24_UINT    Format = 22
	Format_R10G10B10A2_TYPELESS       Format = 23
	Format_R10G10B10A2_UNORM          Format = 24
	Format_R10G10B10A2_UINT           Format = 25
	Format_R11G11B10_FLOAT            Format = 26
	Format_R8G8B8A8_TYPELESS          Format = 27
	Format_R8G8B8A8_UNORM             Format = 28
	Format_R8G8B8A8_UNORM_SRGB        Format = 29
	Format_R8G8B8A8_UINT              Format = 30
	Format_R8G8B8A8_SNORM             Format = 31
	Format_R8G8B8A8_SINT              Format = 32
	Format_R16G16_TYPELESS            Format = 33
	Format_R16G16_FLOAT               Format = 34
	Format_R16G16_UNORM               Format = 35
	Format_R16G16_UINT                Format = 36
	Format_R16G16_SNORM               Format = 37
	Format_R16G16_SINT                Format = 38
	Format_R32_TYPELESS               Format = 39
	Format_D32_FLOAT                  Format = 40
	Format_R32_FLOAT                  Format = 41
	Format_R32_UINT                   Format = 42
	Format_R32_SINT                   Format = 43
	Format_R24G8_TYPELESS             Format = 44
	Format_D24_UNORM_S8_UINT          Format = 45
	Format_R24_UNORM_X8_TYPELESS      Format = 46
	Format_X24_TYPELESS_G8_UINT       Format = 47
	Format_R8G8_TYPELESS              Format = 48
	Format_R8G8_UNORM                 Format = 49
	Format_R8G8_UINT                  Format = 50
	Format_R8G8_SNORM                 Format = 51
	Format_R8G8_SINT                  Format = 52
	Format_R16_TYPELESS               Format = 53
	Format_R16_FLOAT                  Format = 54
	Format_D16_UNORM                  Format = 55
	Format_R16_UNORM                  Format = 56
	Format_R16_UINT                   Format = 57
	Format_R16_SNORM                  Format = 58
	Format_R16_SINT                   Format = 59
	Format_R8_TYPELESS                Format = 60
	Format_R8_UNORM                   Format = 61
	Format_R8_UINT                    Format = 62
	Format_R8_SNORM                   Format = 63
	Format_R8_SINT                    Format = 64
	Format_A8_UNORM                   Format = 65
	Format_R1_UNORM                   Format = 66
	Format_R9G9B9E5_SHAREDEXP         Format = 67
	Format_R8G8_B8G8_UNORM            Format = 68
	Format_G8R8_G8B8_UNORM            Format = 69
	Format_BC1_TYPELESS               Format = 70
	Format_BC1_UNORM                  Format = 71
	Format_BC1_UNORM_SRGB             Format = 72
	Format_BC2_TYPELESS               Format = 73
	Format_BC2_UNORM                  Format = 74
	Format_BC2_UNORM_SRGB             Format = 75
	Format_BC3_TYPELESS               Format = 76
	Format_BC3_UNORM                  Format = 77
	Format_BC3_UNORM_SRGB             Format = 78
	Format_BC4_TYPELESS               Format = 79
	Format_BC4_UNORM                  Format = 80
	Format_BC4_SNORM                  Format = 81
	Format_BC5_TYPELESS               Format = 82
	Format_BC5_UNORM                  Format = 83
	Format_BC5_SNORM                  Format = 84
	Format_B5G6R5_UNORM               Format = 85
	Format_B5G5R5A1_UNORM             Format = 86
	Format_B8G8R8A8_UNORM             Format = 87
	Format_B8G8R8X8_UNORM             Format = 88
	Format_R10G10B10_XR_BIAS_A2_UNORM Format = 89
	Format_B8G8R8A8_TYPELESS          Format = 90
	Format_B8G8R8A8_UNORM_SRGB        Format = 91
	Format_B8G8R8X8_TYPELESS          Format = 92
	Format_B8G8R8X8_UNORM_SRGB        Format = 93
	Format_BC6H_TYPELESS              Format = 94
	Format_BC6H_UF16                  Format = 95
	Format_BC6H_SF16                  Format = 96
	Format_BC7_TYPELESS               Format = 97
	Format_BC7_UNORM                  Format = 98
	Format_BC7_UNORM_SRGB             Format = 99
	Format_B4G4R4A4_UNORM             Format = 115
)

var formatNames = map[Format]string{
	Format_UNKNOWN:                    "DXGI_FORMAT_UNKNOWN",
	Format_R32G32B32A32_TYPELESS:      "DXGI_FORMAT_R32G32B32A32_TYPELESS",
	Format_R32G32B32A32_FLOAT:         "DXGI_FORMAT_R32G32B32A32_FLOAT",
	Format_R32G32B32A32_UINT:          "DXGI_FORMAT_R32G32B32A32_UINT",
	Format_R32G32B32A32_SINT:          "DXGI_FORMAT_R32G32B32A32_SINT",
	Format_R32G32B32_TYPELESS:         "DXGI_FORMAT_R32G32B32_TYPELESS",
	Format_R32G32B32_FLOAT:            "DXGI_FORMAT_R32G32B32_FLOAT",
	Format_R32G32B32_UINT:             "DXGI_FORMAT_R32G32B32_UINT",
	Format_R32G32B32_SINT:             "DXGI_FORMAT_R32G32B32_SINT",
	Format_R16G16B16A16_TYPELESS:      "DXGI_FORMAT_R16G16B16A16_TYPELESS",
	Format_R16G16B16A16_FLOAT:         "DXGI_FORMAT_R16G16B16A16_FLOAT",
	Format_R16G16B16A16_UNORM:         "DXGI_FORMAT_R16G16B16A16_UNORM",
	Format_R16G16B16A16_UINT:          "DXGI_FORMAT_R16G16B16A16_UINT",
	Format_R16G16B16A16_SNORM:         "DXGI_FORMAT_R16G16B16A16_SNORM",
	Format_R16G16B16A16_SINT:          "DXGI_FORMAT_R16G16B16A16_SINT",
	Format_R32G32_TYPELESS:            "DXGI_FORMAT_R32G32_TYPELESS",
	Format_R32G32_FLOAT:               "DXGI_FORMAT_R32G32_FLOAT",
	Format_R32G32_UINT:                "DXGI_FORMAT_R32G32_UINT",
	Format_R32G32_SINT:                "DXGI_FORMAT_R32G32_SINT",
	Format_R32G8X24_TYPELESS:          "DXGI_FORMAT_R32G8X24_TYPELESS",
	Format_D32_FLOAT_S8X24_UINT:       "DXGI_FORMAT_D32_FLOAT_S8X24_UINT",
	Format_R32_FLOAT_X8X24_TYPELESS:   "DXGI_FORMAT_R32_FLOAT_X8X24_TYPELESS",
	Format_X32_TYPELESS_G8X24_UINT:    "DXGI_FORMAT_X32_TYPELESS_G8X24_UINT",
	Format_R10G10B10A2_TYPELESS:       "DXGI_FORMAT_R10G10B10A2_TYPELESS",
	Format_R10G10B10A2_UNORM:          "DXGI_FORMAT_R10G10B10A2_UNORM",
	Format_R10G10B10A2_UINT:           "DXGI_FORMAT_R10G10B10A2_UINT",
	Format_R11G11B10_FLOAT:            "DXGI_FORMAT_R11G11B10_FLOAT",
	Format_R8G8B8A8_TYPELESS:          "DXGI_FORMAT_R8G8B8A8_TYPELESS",
	Format_R8G8B8A8_UNORM:             "DXGI_FORMAT_R8G8B8A8_UNORM",
	Format_R8G8B8A8_UNORM_SRGB:        "DXGI_FORMAT_R8G8B8A8_UNORM_SRGB",
	Format_R8G8B8A8_UINT:              "DXGI_FORMAT_R8G8B8A8_UINT",
	Format_R8G8B8A8_SNORM:             "DXGI_FORMAT_R8G8B8A8_SNORM",
	Format_R8G8B8A8_SINT:              "DXGI_FORMAT_R8G8B8A8_SINT",
	Format_R16G16_TYPELESS:            "DXGI_FORMAT_R16G16_TYPELESS",
	Format_R16G16_FLOAT:               "DXGI_FORMAT_R16G16_FLOAT",
	Format_R16G16_UNORM:               "DXGI_FORMAT_R16G16_UNORM",
	Format_R16G16_UINT:                "DXGI_FORMAT_R16G16_UINT",
	Format_R16G16_SNORM:               "DXGI_FORMAT_R16G16_SNORM",
	Format_R16G16_SINT:                "DXGI_FORMAT_R16G16_SINT",
	Format_R32_TYPELESS:               "DXGI_FORMAT_R32_TYPELESS",
	Format_D32_FLOAT:                  "DXGI_FORMAT_D32_FLOAT",
	Format_R32_FLOAT:                  "DXGI_FORMAT_R32_FLOAT",
	Format_R32_UINT:                   "DXGI_FORMAT_R32_UINT",
	Format_R32_SINT:                   "DXGI_FORMAT_R32_SINT",
	Format_R24G8_TYPELESS:             "DXGI_FORMAT_R24G8_TYPELESS",
	Format_D24_UNORM_S8_UINT:          "DXGI_FORMAT_D24_UNORM_S8_UINT",
	Format_R24_UNORM_X8_TYPELESS:      "DXGI_FORMAT_R24_UNORM_X8_TYPELESS",
	Format_X24_TYPELESS_G8_UINT:       "DXGI_FORMAT_X24_TYPELESS_G8_UINT",
	Format_R8G8_TYPELESS:              "DXGI_FORMAT_R8G8_TYPELESS",
	Format_R8G8_UNORM:                 "DXGI_FORMAT_R8G8_UNORM",
	Format_R8G8_UINT:                  "DXGI_FORMAT_R8G8_UINT",
	Format_R8G8_SNORM:                 "DXGI_FORMAT_R8G8_SNORM",
	Format_R8G8_SINT:                  "DXGI_FORMAT_R8G8_SINT",
	Format_R16_TYPELESS:               "DXGI_FORMAT_R16_TYPELESS",
	Format_R16_FLOAT:                  "DXGI_FORMAT_R16_FLOAT",
	Format_D16_UNORM:                  "DXGI_FORMAT_D16_UNORM",
	Format_R16_UNORM:                  "DXGI_FORMAT_R16_UNORM",
	Format_R16_UINT:                   "DXGI_FORMAT_R16_UINT",
	Format_R16_SNORM:                  "DXGI_FORMAT_R16_SNORM",
	Format_R16_SINT:                   "DXGI_FORMAT_R16_SINT",
	Format_R8_TYPELESS:                "DXGI_FORMAT_R8_TYPELESS",
	Format_R8_UNORM:                   "DXGI_FORMAT_R8_UNORM",
	Format_R8_UINT:                    "DXGI_FORMAT_R8_UINT",
	Format_R8_SNORM:                   "DXGI_FORMAT_R8_SNORM",
	Format_R8_SINT:                    "DXGI_FORMAT_R8_SINT",
	Format_A8_UNORM:                   "DXGI_FORMAT_A8_UNORM",
	Format_R1_UNORM:                   "DXGI_FORMAT_R1_UNORM",
	Format_R9G9B9E5_SHAREDEXP:         "DXGI_FORMAT_R9G9B9E5_SHAREDEXP",
	Format_R8G8_B8G8_UNORM:            "DXGI_FORMAT_R8G8_B8G8_UNORM",
	Format_G8R8_G8B8_UNORM:            "DXGI_FORMAT_G8R8_G8B8_UNORM",
	Format_BC1_TYPELESS:               "DXGI_FORMAT_BC1_TYPELESS",
	Format_BC1_UNORM:                  "DXGI_FORMAT_BC1_UNORM",
	Format_BC1_UNORM_SRGB:             "DXGI_FORMAT_BC1_UNORM_SRGB",
	Format_BC2_TYPELESS:               "DXGI_FORMAT_BC2_TYPELESS",
	Format_BC2_UNORM:                  "DXGI_FORMAT_BC2_UNORM",
	Format_BC2_UNORM_SRGB:             "DXGI_FORMAT_BC2_UNORM_SRGB",
	Format_BC3_TYPELESS:               "DXGI_FORMAT_BC3_TYPELESS",
	Format_BC3_UNORM:                  "DXGI_FORMAT_BC3_UNORM",
	Format_BC3_UNORM_SRGB:             "DXGI_FORMAT_BC3_UNORM_SRGB",
	Format_BC4_TYPELESS:               "DXGI_FORMAT_BC4_TYPELESS",
	Format_BC4_UNORM:                  "DXGI_FORMAT_BC4_UNORM",
	Format_BC4_SNORM:                  "DXGI_FORMAT_BC4_SNORM",
	Format_BC5_TYPELESS:               "DXGI_FORMAT_BC5_TYPELESS",
	Format_BC5_UNORM:                  "DXGI_FORMAT_BC5_UNORM",
	Format_BC5_SNORM:                  "DXGI_FORMAT_BC5_SNORM",
	Format_B5G6R5_UNORM:               "DXGI_FORMAT_B5G6R5_UNORM",
	Format_B5G5R5A1_UNORM:             "DXGI_FORMAT_B5G5R5A1_UNORM",
	Format_B8G8R8A8_UNORM:             "DXGI_FORMAT_B8G8R8A8_UNORM",
	Format_B8G8R8X8_UNORM:             "DXGI_FORMAT_B8G8R8X8_UNORM",
	Format_R10G10B10_XR_BIAS_A2_UNORM: "DXGI_FORMAT_R10G10B10_XR_BIAS_A2_UNORM",
	Format_B8G8R8A8_TYPELESS:          "DXGI_FORMAT_B8G8R8A8_TYPELESS",
	Format_B8G8R8A8_UNORM_SRGB:        "DXGI_FORMAT_B8G8R8A8_UNORM_SRGB",
	Format_B8G8R8X8_TYPELESS:          "DXGI_FORMAT_B8G8R8X8_TYPELESS",
	Format_B8G8R8X8_UNORM_SRGB:        "DXGI_FORMAT_B8G8R8X8_UNORM_SRGB",
	Format_BC6H_TYPELESS:              "DXGI_FORMAT_BC6H_TYPELESS",
	Format_BC6H_UF16:                  "DXGI_FORMAT_BC6H_UF16",
	Format_BC6H_SF16:                  "DXGI_FORMAT_BC6H_SF16",
	Format_BC7_TYPELESS:               "DXGI_FORMAT_BC7_TYPELESS",
	Format_BC7_UNORM:                  "DXGI_FORMAT_BC7_UNORM",
	Format_BC7_UNORM_SRGB:             "DXGI_FORMAT_BC7_UNORM_SRGB",
	Format_B4G4R4A4_UNORM:             "DXGI_FORMAT_B4G4R4A4_UNORM",
}
