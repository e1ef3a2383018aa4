package font

// Standard single-byte encodings from PDF 32000-1 Annex D, expressed
// directly as code -> Unicode tables. A zero entry means the code has
// no glyph in that encoding.

// StandardEncoding is the Adobe standard (PostScript) encoding, the
// implicit base encoding for Type 1 fonts.
var StandardEncoding = [256]rune{
	0x20: 0x0020, 0x21: 0x0021, 0x22: 0x0022, 0x23: 0x0023,
	0x24: 0x0024, 0x25: 0x0025, 0x26: 0x0026, 0x27: 0x2019,
	0x28: 0x0028, 0x29: 0x0029, 0x2A: 0x002A, 0x2B: 0x002B,
	0x2C: 0x002C, 0x2D: 0x002D, 0x2E: 0x002E, 0x2F: 0x002F,
	0x30: 0x0030, 0x31: 0x0031, 0x32: 0x0032, 0x33: 0x0033,
	0x34: 0x0034, 0x35: 0x0035, 0x36: 0x0036, 0x37: 0x0037,
	0x38: 0x0038, 0x39: 0x0039, 0x3A: 0x003A, 0x3B: 0x003B,
	0x3C: 0x003C, 0x3D: 0x003D, 0x3E: 0x003E, 0x3F: 0x003F,
	0x40: 0x0040, 0x41: 0x0041, 0x42: 0x0042, 0x43: 0x0043,
	0x44: 0x0044, 0x45: 0x0045, 0x46: 0x0046, 0x47: 0x0047,
	0x48: 0x0048, 0x49: 0x0049, 0x4A: 0x004A, 0x4B: 0x004B,
	0x4C: 0x004C, 0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F,
	0x50: 0x0050, 0x51: 0x0051, 0x52: 0x0052, 0x53: 0x0053,
	0x54: 0x0054, 0x55: 0x0055, 0x56: 0x0056, 0x57: 0x0057,
	0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A, 0x5B: 0x005B,
	0x5C: 0x005C, 0x5D: 0x005D, 0x5E: 0x005E, 0x5F: 0x005F,
	0x60: 0x2018, 0x61: 0x0061, 0x62: 0x0062, 0x63: 0x0063,
	0x64: 0x0064, 0x65: 0x0065, 0x66: 0x0066, 0x67: 0x0067,
	0x68: 0x0068, 0x69: 0x0069, 0x6A: 0x006A, 0x6B: 0x006B,
	0x6C: 0x006C, 0x6D: 0x006D, 0x6E: 0x006E, 0x6F: 0x006F,
	0x70: 0x0070, 0x71: 0x0071, 0x72: 0x0072, 0x73: 0x0073,
	0x74: 0x0074, 0x75: 0x0075, 0x76: 0x0076, 0x77: 0x0077,
	0x78: 0x0078, 0x79: 0x0079, 0x7A: 0x007A, 0x7B: 0x007B,
	0x7C: 0x007C, 0x7D: 0x007D, 0x7E: 0x007E,
	0xA1: 0x00A1, 0xA2: 0x00A2, 0xA3: 0x00A3, 0xA4: 0x2044,
	0xA5: 0x00A5, 0xA6: 0x0192, 0xA7: 0x00A7, 0xA8: 0x00A4,
	0xA9: 0x0027, 0xAA: 0x201C, 0xAB: 0x00AB, 0xAC: 0x2039,
	0xAD: 0x203A, 0xAE: 0xFB01, 0xAF: 0xFB02,
	0xB1: 0x2013, 0xB2: 0x2020, 0xB3: 0x2021, 0xB4: 0x00B7,
	0xB6: 0x00B6, 0xB7: 0x2022, 0xB8: 0x201A, 0xB9: 0x201E,
	0xBA: 0x201D, 0xBB: 0x00BB, 0xBC: 0x2026, 0xBD: 0x2030,
	0xBF: 0x00BF, 0xC1: 0x0060, 0xC2: 0x00B4, 0xC3: 0x02C6,
	0xC4: 0x02DC, 0xC5: 0x00AF, 0xC6: 0x02D8, 0xC7: 0x02D9,
	0xC8: 0x00A8, 0xCA: 0x02DA, 0xCB: 0x00B8, 0xCD: 0x02DD,
	0xCE: 0x02DB, 0xCF: 0x02C7, 0xD0: 0x2014,
	0xE1: 0x00C6, 0xE3: 0x00AA, 0xE8: 0x0141, 0xE9: 0x00D8,
	0xEA: 0x0152, 0xEB: 0x00BA, 0xF1: 0x00E6, 0xF5: 0x0131,
	0xF8: 0x0142, 0xF9: 0x00F8, 0xFA: 0x0153, 0xFB: 0x00DF,
}

// WinAnsiEncoding is the Windows code page 1252 encoding.
var WinAnsiEncoding = [256]rune{
	0x20: 0x0020, 0x21: 0x0021, 0x22: 0x0022, 0x23: 0x0023,
	0x24: 0x0024, 0x25: 0x0025, 0x26: 0x0026, 0x27: 0x0027,
	0x28: 0x0028, 0x29: 0x0029, 0x2A: 0x002A, 0x2B: 0x002B,
	0x2C: 0x002C, 0x2D: 0x002D, 0x2E: 0x002E, 0x2F: 0x002F,
	0x30: 0x0030, 0x31: 0x0031, 0x32: 0x0032, 0x33: 0x0033,
	0x34: 0x0034, 0x35: 0x0035, 0x36: 0x0036, 0x37: 0x0037,
	0x38: 0x0038, 0x39: 0x0039, 0x3A: 0x003A, 0x3B: 0x003B,
	0x3C: 0x003C, 0x3D: 0x003D, 0x3E: 0x003E, 0x3F: 0x003F,
	0x40: 0x0040, 0x41: 0x0041, 0x42: 0x0042, 0x43: 0x0043,
	0x44: 0x0044, 0x45: 0x0045, 0x46: 0x0046, 0x47: 0x0047,
	0x48: 0x0048, 0x49: 0x0049, 0x4A: 0x004A, 0x4B: 0x004B,
	0x4C: 0x004C, 0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F,
	0x50: 0x0050, 0x51: 0x0051, 0x52: 0x0052, 0x53: 0x0053,
	0x54: 0x0054, 0x55: 0x0055, 0x56: 0x0056, 0x57: 0x0057,
	0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A, 0x5B: 0x005B,
	0x5C: 0x005C, 0x5D: 0x005D, 0x5E: 0x005E, 0x5F: 0x005F,
	0x60: 0x0060, 0x61: 0x0061, 0x62: 0x0062, 0x63: 0x0063,
	0x64: 0x0064, 0x65: 0x0065, 0x66: 0x0066, 0x67: 0x0067,
	0x68: 0x0068, 0x69: 0x0069, 0x6A: 0x006A, 0x6B: 0x006B,
	0x6C: 0x006C, 0x6D: 0x006D, 0x6E: 0x006E, 0x6F: 0x006F,
	0x70: 0x0070, 0x71: 0x0071, 0x72: 0x0072, 0x73: 0x0073,
	0x74: 0x0074, 0x75: 0x0075, 0x76: 0x0076, 0x77: 0x0077,
	0x78: 0x0078, 0x79: 0x0079, 0x7A: 0x007A, 0x7B: 0x007B,
	0x7C: 0x007C, 0x7D: 0x007D, 0x7E: 0x007E,
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
	0xA0: 0x00A0, 0xA1: 0x00A1, 0xA2: 0x00A2, 0xA3: 0x00A3,
	0xA4: 0x00A4, 0xA5: 0x00A5, 0xA6: 0x00A6, 0xA7: 0x00A7,
	0xA8: 0x00A8, 0xA9: 0x00A9, 0xAA: 0x00AA, 0xAB: 0x00AB,
	0xAC: 0x00AC, 0xAD: 0x00AD, 0xAE: 0x00AE, 0xAF: 0x00AF,
	0xB0: 0x00B0, 0xB1: 0x00B1, 0xB2: 0x00B2, 0xB3: 0x00B3,
	0xB4: 0x00B4, 0xB5: 0x00B5, 0xB6: 0x00B6, 0xB7: 0x00B7,
	0xB8: 0x00B8, 0xB9: 0x00B9, 0xBA: 0x00BA, 0xBB: 0x00BB,
	0xBC: 0x00BC, 0xBD: 0x00BD, 0xBE: 0x00BE, 0xBF: 0x00BF,
	0xC0: 0x00C0, 0xC1: 0x00C1, 0xC2: 0x00C2, 0xC3: 0x00C3,
	0xC4: 0x00C4, 0xC5: 0x00C5, 0xC6: 0x00C6, 0xC7: 0x00C7,
	0xC8: 0x00C8, 0xC9: 0x00C9, 0xCA: 0x00CA, 0xCB: 0x00CB,
	0xCC: 0x00CC, 0xCD: 0x00CD, 0xCE: 0x00CE, 0xCF: 0x00CF,
	0xD0: 0x00D0, 0xD1: 0x00D1, 0xD2: 0x00D2, 0xD3: 0x00D3,
	0xD4: 0x00D4, 0xD5: 0x00D5, 0xD6: 0x00D6, 0xD7: 0x00D7,
	0xD8: 0x00D8, 0xD9: 0x00D9, 0xDA: 0x00DA, 0xDB: 0x00DB,
	0xDC: 0x00DC, 0xDD: 0x00DD, 0xDE: 0x00DE, 0xDF: 0x00DF,
	0xE0: 0x00E0, 0xE1: 0x00E1, 0xE2: 0x00E2, 0xE3: 0x00E3,
	0xE4: 0x00E4, 0xE5: 0x00E5, 0xE6: 0x00E6, 0xE7: 0x00E7,
	0xE8: 0x00E8, 0xE9: 0x00E9, 0xEA: 0x00EA, 0xEB: 0x00EB,
	0xEC: 0x00EC, 0xED: 0x00ED, 0xEE: 0x00EE, 0xEF: 0x00EF,
	0xF0: 0x00F0, 0xF1: 0x00F1, 0xF2: 0x00F2, 0xF3: 0x00F3,
	0xF4: 0x00F4, 0xF5: 0x00F5, 0xF6: 0x00F6, 0xF7: 0x00F7,
	0xF8: 0x00F8, 0xF9: 0x00F9, 0xFA: 0x00FA, 0xFB: 0x00FB,
	0xFC: 0x00FC, 0xFD: 0x00FD, 0xFE: 0x00FE, 0xFF: 0x00FF,
}

// MacRomanEncoding is the Mac OS Roman encoding.
var MacRomanEncoding = [256]rune{
	0x20: 0x0020, 0x21: 0x0021, 0x22: 0x0022, 0x23: 0x0023,
	0x24: 0x0024, 0x25: 0x0025, 0x26: 0x0026, 0x27: 0x0027,
	0x28: 0x0028, 0x29: 0x0029, 0x2A: 0x002A, 0x2B: 0x002B,
	0x2C: 0x002C, 0x2D: 0x002D, 0x2E: 0x002E, 0x2F: 0x002F,
	0x30: 0x0030, 0x31: 0x0031, 0x32: 0x0032, 0x33: 0x0033,
	0x34: 0x0034, 0x35: 0x0035, 0x36: 0x0036, 0x37: 0x0037,
	0x38: 0x0038, 0x39: 0x0039, 0x3A: 0x003A, 0x3B: 0x003B,
	0x3C: 0x003C, 0x3D: 0x003D, 0x3E: 0x003E, 0x3F: 0x003F,
	0x40: 0x0040, 0x41: 0x0041, 0x42: 0x0042, 0x43: 0x0043,
	0x44: 0x0044, 0x45: 0x0045, 0x46: 0x0046, 0x47: 0x0047,
	0x48: 0x0048, 0x49: 0x0049, 0x4A: 0x004A, 0x4B: 0x004B,
	0x4C: 0x004C, 0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F,
	0x50: 0x0050, 0x51: 0x0051, 0x52: 0x0052, 0x53: 0x0053,
	0x54: 0x0054, 0x55: 0x0055, 0x56: 0x0056, 0x57: 0x0057,
	0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A, 0x5B: 0x005B,
	0x5C: 0x005C, 0x5D: 0x005D, 0x5E: 0x005E, 0x5F: 0x005F,
	0x60: 0x0060, 0x61: 0x0061, 0x62: 0x0062, 0x63: 0x0063,
	0x64: 0x0064, 0x65: 0x0065, 0x66: 0x0066, 0x67: 0x0067,
	0x68: 0x0068, 0x69: 0x0069, 0x6A: 0x006A, 0x6B: 0x006B,
	0x6C: 0x006C, 0x6D: 0x006D, 0x6E: 0x006E, 0x6F: 0x006F,
	0x70: 0x0070, 0x71: 0x0071, 0x72: 0x0072, 0x73: 0x0073,
	0x74: 0x0074, 0x75: 0x0075, 0x76: 0x0076, 0x77: 0x0077,
	0x78: 0x0078, 0x79: 0x0079, 0x7A: 0x007A, 0x7B: 0x007B,
	0x7C: 0x007C, 0x7D: 0x007D, 0x7E: 0x007E,
	0x80: 0x00C4, 0x81: 0x00C5, 0x82: 0x00C7, 0x83: 0x00C9,
	0x84: 0x00D1, 0x85: 0x00D6, 0x86: 0x00DC, 0x87: 0x00E1,
	0x88: 0x00E0, 0x89: 0x00E2, 0x8A: 0x00E4, 0x8B: 0x00E3,
	0x8C: 0x00E5, 0x8D: 0x00E7, 0x8E: 0x00E9, 0x8F: 0x00E8,
	0x90: 0x00EA, 0x91: 0x00EB, 0x92: 0x00ED, 0x93: 0x00EC,
	0x94: 0x00EE, 0x95: 0x00EF, 0x96: 0x00F1, 0x97: 0x00F3,
	0x98: 0x00F2, 0x99: 0x00F4, 0x9A: 0x00F6, 0x9B: 0x00F5,
	0x9C: 0x00FA, 0x9D: 0x00F9, 0x9E: 0x00FB, 0x9F: 0x00FC,
	0xA0: 0x2020, 0xA1: 0x00B0, 0xA2: 0x00A2, 0xA3: 0x00A3,
	0xA4: 0x00A7, 0xA5: 0x2022, 0xA6: 0x00B6, 0xA7: 0x00DF,
	0xA8: 0x00AE, 0xA9: 0x00A9, 0xAA: 0x2122, 0xAB: 0x00B4,
	0xAC: 0x00A8, 0xAD: 0x2260, 0xAE: 0x00C6, 0xAF: 0x00D8,
	0xB0: 0x221E, 0xB1: 0x00B1, 0xB2: 0x2264, 0xB3: 0x2265,
	0xB4: 0x00A5, 0xB5: 0x00B5, 0xB6: 0x2202, 0xB7: 0x2211,
	0xB8: 0x220F, 0xB9: 0x03C0, 0xBA: 0x222B, 0xBB: 0x00AA,
	0xBC: 0x00BA, 0xBD: 0x03A9, 0xBE: 0x00E6, 0xBF: 0x00F8,
	0xC0: 0x00BF, 0xC1: 0x00A1, 0xC2: 0x00AC, 0xC3: 0x221A,
	0xC4: 0x0192, 0xC5: 0x2248, 0xC6: 0x2206, 0xC7: 0x00AB,
	0xC8: 0x00BB, 0xC9: 0x2026, 0xCA: 0x00A0, 0xCB: 0x00C0,
	0xCC: 0x00C3, 0xCD: 0x00D5, 0xCE: 0x0152, 0xCF: 0x0153,
	0xD0: 0x2013, 0xD1: 0x2014, 0xD2: 0x201C, 0xD3: 0x201D,
	0xD4: 0x2018, 0xD5: 0x2019, 0xD6: 0x00F7, 0xD7: 0x25CA,
	0xD8: 0x00FF, 0xD9: 0x0178, 0xDA: 0x2044, 0xDB: 0x20AC,
	0xDC: 0x2039, 0xDD: 0x203A, 0xDE: 0xFB01, 0xDF: 0xFB02,
	0xE0: 0x2021, 0xE1: 0x00B7, 0xE2: 0x201A, 0xE3: 0x201E,
	0xE4: 0x2030, 0xE5: 0x00C2, 0xE6: 0x00CA, 0xE7: 0x00C1,
	0xE8: 0x00CB, 0xE9: 0x00C8, 0xEA: 0x00CD, 0xEB: 0x00CE,
	0xEC: 0x00CF, 0xED: 0x00CC, 0xEE: 0x00D3, 0xEF: 0x00D4,
	0xF1: 0x00D2, 0xF2: 0x00DA, 0xF3: 0x00DB, 0xF4: 0x00D9,
	0xF5: 0x0131, 0xF6: 0x02C6, 0xF7: 0x02DC, 0xF8: 0x00AF,
	0xF9: 0x02D8, 0xFA: 0x02D9, 0xFB: 0x02DA, 0xFC: 0x00B8,
	0xFD: 0x02DD, 0xFE: 0x02DB, 0xFF: 0x02C7,
}

// MacExpertEncoding covers the expert character set: small capitals,
// oldstyle figures and extended ligatures. Only the entries with
// stable Unicode equivalents are mapped; the small-capital glyphs
// live in Adobe's corporate private use area and are left unmapped.
var MacExpertEncoding = [256]rune{
	0x20: 0x0020, 0x21: 0xF721, 0x24: 0xF724, 0x26: 0xF726,
	0x27: 0xF727, 0x28: 0x207D, 0x29: 0x207E, 0x2C: 0x002C,
	0x2D: 0x002D, 0x2E: 0x002E, 0x2F: 0x2044,
	0x30: 0xF730, 0x31: 0xF731, 0x32: 0xF732, 0x33: 0xF733,
	0x34: 0xF734, 0x35: 0xF735, 0x36: 0xF736, 0x37: 0xF737,
	0x38: 0xF738, 0x39: 0xF739, 0x3A: 0x003A, 0x3B: 0x003B,
	0x3F: 0xF73F,
	0x56: 0xFB00, 0x57: 0xFB01, 0x58: 0xFB02, 0x59: 0xFB03,
	0x5A: 0xFB04,
}

// PDFDocEncoding is the encoding of text strings in the PDF document
// itself. A font uses it only when its /Encoding names it.
var PDFDocEncoding = [256]rune{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
	0x02D8, 0x02C7, 0x02C6, 0x02D9, 0x02DD, 0x02DB, 0x02DA, 0x02DC,
	0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27,
	0x28, 0x29, 0x2A, 0x2B, 0x2C, 0x2D, 0x2E, 0x2F,
	0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37,
	0x38, 0x39, 0x3A, 0x3B, 0x3C, 0x3D, 0x3E, 0x3F,
	0x40, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47,
	0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F,
	0x50, 0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57,
	0x58, 0x59, 0x5A, 0x5B, 0x5C, 0x5D, 0x5E, 0x5F,
	0x60, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67,
	0x68, 0x69, 0x6A, 0x6B, 0x6C, 0x6D, 0x6E, 0x6F,
	0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x76, 0x77,
	0x78, 0x79, 0x7A, 0x7B, 0x7C, 0x7D, 0x7E, 0x0000,
	0x2022, 0x2020, 0x2021, 0x2026, 0x2014, 0x2013, 0x0192, 0x2044,
	0x2039, 0x203A, 0x2212, 0x2030, 0x201E, 0x201C, 0x201D, 0x2018,
	0x2019, 0x201A, 0x2122, 0xFB01, 0xFB02, 0x0141, 0x0152, 0x0160,
	0x0178, 0x017D, 0x0131, 0x0142, 0x0153, 0x0161, 0x017E, 0x0000,
	0x20AC, 0x00A1, 0x00A2, 0x00A3, 0x00A4, 0x00A5, 0x00A6, 0x00A7,
	0x00A8, 0x00A9, 0x00AA, 0x00AB, 0x00AC, 0x0000, 0x00AE, 0x00AF,
	0x00B0, 0x00B1, 0x00B2, 0x00B3, 0x00B4, 0x00B5, 0x00B6, 0x00B7,
	0x00B8, 0x00B9, 0x00BA, 0x00BB, 0x00BC, 0x00BD, 0x00BE, 0x00BF,
	0x00C0, 0x00C1, 0x00C2, 0x00C3, 0x00C4, 0x00C5, 0x00C6, 0x00C7,
	0x00C8, 0x00C9, 0x00CA, 0x00CB, 0x00CC, 0x00CD, 0x00CE, 0x00CF,
	0x00D0, 0x00D1, 0x00D2, 0x00D3, 0x00D4, 0x00D5, 0x00D6, 0x00D7,
	0x00D8, 0x00D9, 0x00DA, 0x00DB, 0x00DC, 0x00DD, 0x00DE, 0x00DF,
	0x00E0, 0x00E1, 0x00E2, 0x00E3, 0x00E4, 0x00E5, 0x00E6, 0x00E7,
	0x00E8, 0x00E9, 0x00EA, 0x00EB, 0x00EC, 0x00ED, 0x00EE, 0x00EF,
	0x00F0, 0x00F1, 0x00F2, 0x00F3, 0x00F4, 0x00F5, 0x00F6, 0x00F7,
	0x00F8, 0x00F9, 0x00FA, 0x00FB, 0x00FC, 0x00FD, 0x00FE, 0x00FF,
}

// SymbolEncoding is the built-in encoding of the Symbol font (Greek
// letters and mathematical symbols).
var SymbolEncoding = [256]rune{
	0x20: 0x0020, 0x21: 0x0021, 0x22: 0x2200, 0x23: 0x0023,
	0x24: 0x2203, 0x25: 0x0025, 0x26: 0x0026, 0x27: 0x220B,
	0x28: 0x0028, 0x29: 0x0029, 0x2A: 0x2217, 0x2B: 0x002B,
	0x2C: 0x002C, 0x2D: 0x2212, 0x2E: 0x002E, 0x2F: 0x002F,
	0x30: 0x0030, 0x31: 0x0031, 0x32: 0x0032, 0x33: 0x0033,
	0x34: 0x0034, 0x35: 0x0035, 0x36: 0x0036, 0x37: 0x0037,
	0x38: 0x0038, 0x39: 0x0039, 0x3A: 0x003A, 0x3B: 0x003B,
	0x3C: 0x003C, 0x3D: 0x003D, 0x3E: 0x003E, 0x3F: 0x003F,
	0x40: 0x2245, 0x41: 0x0391, 0x42: 0x0392, 0x43: 0x03A7,
	0x44: 0x0394, 0x45: 0x0395, 0x46: 0x03A6, 0x47: 0x0393,
	0x48: 0x0397, 0x49: 0x0399, 0x4A: 0x03D1, 0x4B: 0x039A,
	0x4C: 0x039B, 0x4D: 0x039C, 0x4E: 0x039D, 0x4F: 0x039F,
	0x50: 0x03A0, 0x51: 0x0398, 0x52: 0x03A1, 0x53: 0x03A3,
	0x54: 0x03A4, 0x55: 0x03A5, 0x56: 0x03C2, 0x57: 0x03A9,
	0x58: 0x039E, 0x59: 0x03A8, 0x5A: 0x0396, 0x5B: 0x005B,
	0x5C: 0x2234, 0x5D: 0x005D, 0x5E: 0x22A5, 0x5F: 0x005F,
	0x60: 0xF8E5, 0x61: 0x03B1, 0x62: 0x03B2, 0x63: 0x03C7,
	0x64: 0x03B4, 0x65: 0x03B5, 0x66: 0x03C6, 0x67: 0x03B3,
	0x68: 0x03B7, 0x69: 0x03B9, 0x6A: 0x03D5, 0x6B: 0x03BA,
	0x6C: 0x03BB, 0x6D: 0x03BC, 0x6E: 0x03BD, 0x6F: 0x03BF,
	0x70: 0x03C0, 0x71: 0x03B8, 0x72: 0x03C1, 0x73: 0x03C3,
	0x74: 0x03C4, 0x75: 0x03C5, 0x76: 0x03D6, 0x77: 0x03C9,
	0x78: 0x03BE, 0x79: 0x03C8, 0x7A: 0x03B6, 0x7B: 0x007B,
	0x7C: 0x007C, 0x7D: 0x007D, 0x7E: 0x223C,
	0xA0: 0x20AC, 0xA1: 0x03D2, 0xA2: 0x2032, 0xA3: 0x2264,
	0xA4: 0x2044, 0xA5: 0x221E, 0xA6: 0x0192, 0xA7: 0x2663,
	0xA8: 0x2666, 0xA9: 0x2665, 0xAA: 0x2660, 0xAB: 0x2194,
	0xAC: 0x2190, 0xAD: 0x2191, 0xAE: 0x2192, 0xAF: 0x2193,
	0xB0: 0x00B0, 0xB1: 0x00B1, 0xB2: 0x2033, 0xB3: 0x2265,
	0xB4: 0x00D7, 0xB5: 0x221D, 0xB6: 0x2202, 0xB7: 0x2022,
	0xB8: 0x00F7, 0xB9: 0x2260, 0xBA: 0x2261, 0xBB: 0x2248,
	0xBC: 0x2026, 0xBD: 0x23D0, 0xBE: 0x23AF, 0xBF: 0x21B5,
	0xC0: 0x2135, 0xC1: 0x2111, 0xC2: 0x211C, 0xC3: 0x2118,
	0xC4: 0x2297, 0xC5: 0x2295, 0xC6: 0x2205, 0xC7: 0x2229,
	0xC8: 0x222A, 0xC9: 0x2283, 0xCA: 0x2287, 0xCB: 0x2284,
	0xCC: 0x2282, 0xCD: 0x2286, 0xCE: 0x2208, 0xCF: 0x2209,
	0xD0: 0x2220, 0xD1: 0x2207, 0xD2: 0x00AE, 0xD3: 0x00A9,
	0xD4: 0x2122, 0xD5: 0x220F, 0xD6: 0x221A, 0xD7: 0x22C5,
	0xD8: 0x00AC, 0xD9: 0x2227, 0xDA: 0x2228, 0xDB: 0x21D4,
	0xDC: 0x21D0, 0xDD: 0x21D1, 0xDE: 0x21D2, 0xDF: 0x21D3,
	0xE0: 0x25CA, 0xE1: 0x2329, 0xE2: 0x00AE, 0xE3: 0x00A9,
	0xE4: 0x2122, 0xE5: 0x2211, 0xE6: 0x239B, 0xE7: 0x239C,
	0xE8: 0x239D, 0xE9: 0x23A1, 0xEA: 0x23A2, 0xEB: 0x23A3,
	0xEC: 0x23A7, 0xED: 0x23A8, 0xEE: 0x23A9, 0xEF: 0x23AA,
	0xF1: 0x232A, 0xF2: 0x222B, 0xF3: 0x2320, 0xF4: 0x23AE,
	0xF5: 0x2321, 0xF6: 0x239E, 0xF7: 0x239F, 0xF8: 0x23A0,
	0xF9: 0x23A4, 0xFA: 0x23A5, 0xFB: 0x23A6, 0xFC: 0x23AB,
	0xFD: 0x23AC, 0xFE: 0x23AD,
}

// ZapfDingbatsEncoding is the built-in encoding of the ZapfDingbats
// font.
var ZapfDingbatsEncoding = [256]rune{
	0x20: 0x0020, 0x21: 0x2701, 0x22: 0x2702, 0x23: 0x2703,
	0x24: 0x2704, 0x25: 0x260E, 0x26: 0x2706, 0x27: 0x2707,
	0x28: 0x2708, 0x29: 0x2709, 0x2A: 0x261B, 0x2B: 0x261E,
	0x2C: 0x270C, 0x2D: 0x270D, 0x2E: 0x270E, 0x2F: 0x270F,
	0x30: 0x2710, 0x31: 0x2711, 0x32: 0x2712, 0x33: 0x2713,
	0x34: 0x2714, 0x35: 0x2715, 0x36: 0x2716, 0x37: 0x2717,
	0x38: 0x2718, 0x39: 0x2719, 0x3A: 0x271A, 0x3B: 0x271B,
	0x3C: 0x271C, 0x3D: 0x271D, 0x3E: 0x271E, 0x3F: 0x271F,
	0x40: 0x2720, 0x41: 0x2721, 0x42: 0x2722, 0x43: 0x2723,
	0x44: 0x2724, 0x45: 0x2725, 0x46: 0x2726, 0x47: 0x2727,
	0x48: 0x2605, 0x49: 0x2729, 0x4A: 0x272A, 0x4B: 0x272B,
	0x4C: 0x272C, 0x4D: 0x272D, 0x4E: 0x272E, 0x4F: 0x272F,
	0x50: 0x2730, 0x51: 0x2731, 0x52: 0x2732, 0x53: 0x2733,
	0x54: 0x2734, 0x55: 0x2735, 0x56: 0x2736, 0x57: 0x2737,
	0x58: 0x2738, 0x59: 0x2739, 0x5A: 0x273A, 0x5B: 0x273B,
	0x5C: 0x273C, 0x5D: 0x273D, 0x5E: 0x273E, 0x5F: 0x273F,
	0x60: 0x2740, 0x61: 0x2741, 0x62: 0x2742, 0x63: 0x2743,
	0x64: 0x2744, 0x65: 0x2745, 0x66: 0x2746, 0x67: 0x2747,
	0x68: 0x2748, 0x69: 0x2749, 0x6A: 0x274A, 0x6B: 0x274B,
	0x6C: 0x25CF, 0x6D: 0x274D, 0x6E: 0x25A0, 0x6F: 0x274F,
	0x70: 0x2750, 0x71: 0x2751, 0x72: 0x2752, 0x73: 0x25B2,
	0x74: 0x25BC, 0x75: 0x25C6, 0x76: 0x2756, 0x77: 0x25D7,
	0x78: 0x2758, 0x79: 0x2759, 0x7A: 0x275A, 0x7B: 0x275B,
	0x7C: 0x275C, 0x7D: 0x275D, 0x7E: 0x275E,
	0x80: 0x2768, 0x81: 0x2769, 0x82: 0x276A, 0x83: 0x276B,
	0x84: 0x276C, 0x85: 0x276D, 0x86: 0x276E, 0x87: 0x276F,
	0x88: 0x2770, 0x89: 0x2771, 0x8A: 0x2772, 0x8B: 0x2773,
	0x8C: 0x2774, 0x8D: 0x2775,
	0xA1: 0x2761, 0xA2: 0x2762, 0xA3: 0x2763, 0xA4: 0x2764,
	0xA5: 0x2765, 0xA6: 0x2766, 0xA7: 0x2767, 0xA8: 0x2663,
	0xA9: 0x2666, 0xAA: 0x2665, 0xAB: 0x2660, 0xAC: 0x2460,
	0xAD: 0x2461, 0xAE: 0x2462, 0xAF: 0x2463, 0xB0: 0x2464,
	0xB1: 0x2465, 0xB2: 0x2466, 0xB3: 0x2467, 0xB4: 0x2468,
	0xB5: 0x2469, 0xB6: 0x2776, 0xB7: 0x2777, 0xB8: 0x2778,
	0xB9: 0x2779, 0xBA: 0x277A, 0xBB: 0x277B, 0xBC: 0x277C,
	0xBD: 0x277D, 0xBE: 0x277E, 0xBF: 0x277F,
	0xC0: 0x2780, 0xC1: 0x2781, 0xC2: 0x2782, 0xC3: 0x2783,
	0xC4: 0x2784, 0xC5: 0x2785, 0xC6: 0x2786, 0xC7: 0x2787,
	0xC8: 0x2788, 0xC9: 0x2789, 0xCA: 0x278A, 0xCB: 0x278B,
	0xCC: 0x278C, 0xCD: 0x278D, 0xCE: 0x278E, 0xCF: 0x278F,
	0xD0: 0x2790, 0xD1: 0x2791, 0xD2: 0x2792, 0xD3: 0x2793,
	0xD4: 0x2794, 0xD5: 0x2192, 0xD6: 0x2194, 0xD7: 0x2195,
	0xD8: 0x2798, 0xD9: 0x2799, 0xDA: 0x279A, 0xDB: 0x279B,
	0xDC: 0x279C, 0xDD: 0x279D, 0xDE: 0x279E, 0xDF: 0x279F,
	0xE0: 0x27A0, 0xE1: 0x27A1, 0xE2: 0x27A2, 0xE3: 0x27A3,
	0xE4: 0x27A4, 0xE5: 0x27A5, 0xE6: 0x27A6, 0xE7: 0x27A7,
	0xE8: 0x27A8, 0xE9: 0x27A9, 0xEA: 0x27AA, 0xEB: 0x27AB,
	0xEC: 0x27AC, 0xED: 0x27AD, 0xEE: 0x27AE, 0xEF: 0x27AF,
	0xF1: 0x27B1, 0xF2: 0x27B2, 0xF3: 0x27B3, 0xF4: 0x27B4,
	0xF5: 0x27B5, 0xF6: 0x27B6, 0xF7: 0x27B7, 0xF8: 0x27B8,
	0xF9: 0x27B9, 0xFA: 0x27BA, 0xFB: 0x27BB, 0xFC: 0x27BC,
	0xFD: 0x27BD, 0xFE: 0x27BE,
}

// namedEncoding resolves a predefined encoding name to its table.
func namedEncoding(name string) (*[256]rune, bool) {
	switch name {
	case "StandardEncoding":
		return &StandardEncoding, true
	case "WinAnsiEncoding":
		return &WinAnsiEncoding, true
	case "MacRomanEncoding":
		return &MacRomanEncoding, true
	case "MacExpertEncoding":
		return &MacExpertEncoding, true
	case "PDFDocEncoding":
		return &PDFDocEncoding, true
	case "SymbolEncoding":
		return &SymbolEncoding, true
	case "ZapfDingbatsEncoding":
		return &ZapfDingbatsEncoding, true
	default:
		return nil, false
	}
}
