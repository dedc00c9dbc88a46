package testutil

// SimpleVTT is a minimal two-cue WebVTT body.
const SimpleVTT = "00:00:00.000 --> 00:00:02.500\nHello <b>world</b>\n\n00:00:02.500 --> 00:00:04.000\nSecond line\n"

// YouTubeAutoVTT mimics an automatic caption file as written by yt-dlp:
// header metadata, cue settings, inline word timing tags and a markup-only cue.
const YouTubeAutoVTT = `WEBVTT
Kind: captions
Language: en

00:00:00.320 --> 00:00:02.870 align:start position:0%
so<00:00:00.640><c> today</c><00:00:01.040><c> we're</c><00:00:01.360><c> talking</c>

00:00:02.870 --> 00:00:02.880 align:start position:0%
<c></c>

00:00:02.880 --> 00:00:05.120 align:start position:0%
about<00:00:03.200><c> subtitles</c>
and timing
`

// SimpleSRT is a SubRip body with counters, comma decimals and CRLF line endings.
const SimpleSRT = "1\r\n00:00:01,000 --> 00:00:03,250\r\nFirst <i>cue</i>\r\n\r\n2\r\n00:01:00,500 --> 00:01:02,000\r\nSecond cue\r\nsecond line\r\n"

// VideoInfoJSON is a trimmed `yt-dlp --dump-json` document.
const VideoInfoJSON = `{
  "id": "dQw4w9WgXcQ",
  "title": "Never Gonna Give You Up",
  "duration": 212.0,
  "uploader": "Rick Astley",
  "upload_date": "20091025",
  "view_count": 1500000000,
  "description": "The official video",
  "thumbnail": "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
  "tags": ["rick astley", "music"],
  "categories": ["Music"],
  "subtitles": {
    "en": [
      {"ext": "json3", "url": "https://www.youtube.com/api/timedtext?lang=en&fmt=json3", "name": "English"},
      {"ext": "vtt", "url": "https://www.youtube.com/api/timedtext?lang=en&fmt=vtt", "name": "English"}
    ],
    "fr": []
  },
  "automatic_captions": {
    "en": [{"ext": "vtt", "url": "https://www.youtube.com/api/timedtext?lang=en&kind=asr&fmt=vtt", "name": "English"}],
    "de": [{"ext": "vtt", "url": "https://www.youtube.com/api/timedtext?lang=de&kind=asr&fmt=vtt", "name": "German"}]
  }
}`
