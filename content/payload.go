package content

// EncodedHomepage is the compact form of the homepage body shipped inside the binary.
const EncodedHomepage = "PCFET0NUWVBFIEhUTUwgUFVCTElDICItLy9XM0MvL0RURCBIVE1MIDQuMDEvL0VOIiAiaHR0cDovL3d3dy53My5vcmcvVFIvaHRtbDQvc3RyaWN0LmR0ZCI+CjxodG1sPgogICA8aGVhZD4KICAgPHRpdGxlPgogICAgICAgICB+IG1hcmNlbHBldHJpY2suaXQgfgogICAgICA8L3RpdGxlPgogICAgICA8TUVUQSBuYW1lPSJkZXNjcmlwdGlvbiIgY29udGVudD0ibWFyY2VscGV0cmljay5pdCI+PE1FVEEgbmFtZT0ia2V5d29yZHMiIGNvbnRlbnQ9Im1hcmNlbHBldHJpY2suaXQgTWFyY2VsIFBldHJpY2sgSVQgY29tcHV0ZXIgc2NpZW5jZSI+CiAgIDwvaGVhZD4KCiAgIDxib2R5IHN0eWxlPSJiYWNrZ3JvdW5kLWNvbG9yOiBibGFjazsiPgoJPHAgc3R5bGU9ImNvbG9yOiB3aGl0ZTsgZm9udC1zaXplOiAxMnB0OyBmb250LWZhbWlseTogQXJpYWwsIHNhbnMtc2VyaWY7Ij4KCQlIb21lcGFnZSBvZiBNYXJjZWwgUGV0cmljay48L2JyPgoJCS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS08L2JyPgoJCUNvbnRhY3QgbWUgdmlhIG1haWw6IGFkZCA8Yj5tYWlsPC9iPiBwbHVzIDxiPkA8L2I+IHBsdXMgPGI+bWFyY2VscGV0cmljay5pdDwvYj48L2JyPgoJCS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS0tLS08L2JyPgoJPC9wPgoJPHAgc3R5bGU9ImNvbG9yOiB3aGl0ZTsgZm9udC1zaXplOiAxMnB0OyBmb250LWZhbWlseTogQXJpYWwsIHNhbnMtc2VyaWY7Ij4KCQlteSBibG9nIGZvciBzdHVmZiByZWxhdGVkIHRvIGNvbXB1dGUgc2NpZW5jZSwgSVQgYW5kIChhbmFsb2d1ZSkgcGhvdG9ncmFwaHk6IDxhIGhyZWY9IndwX3NvbHV0aW9uc25vdGNvZGUiPiJzb2x1dGlvbnMgbm90IGNvZGUiPC9hPgoJPC9wPgoJPHAgc3R5bGU9ImNvbG9yOiB3aGl0ZTsgZm9udC1zaXplOiAxMnB0OyBmb250LWZhbWlseTogQXJpYWwsIHNhbnMtc2VyaWY7Ij4KCQlnaXRodWItYWNjb3VudDogPGEgaHJlZj0iaHR0cHM6Ly9naXRodWIuY29tL21hcmNlbHBldHJpY2siPmh0dHBzOi8vZ2l0aHViLmNvbS9tYXJjZWxwZXRyaWNrPC9hPgoJPC9wPgoJPHAgc3R5bGU9ImNvbG9yOiB3aGl0ZTsgZm9udC1zaXplOiAxMnB0OyBmb250LWZhbWlseTogQXJpYWwsIHNhbnMtc2VyaWY7Ij4KCQlTaG9ydGN1dHMgdG8gcHVibGljbHkgYWNjZXNzaWJsZSBzbmlwcGV0cyAobWlub3JpdHkgb2YgdGhlbSAtIG1vc3QgaXMgaG9zdGVkIG9uIGdpdGh1Yik6PC9icj4KCQkqIFF0LXVpLWZpbGUtc29ydGVyOiA8YSBocmVmPSJ3cF9zb2x1dGlvbnNub3Rjb2RlLz9wYWdlX2lkPTEyMSI+cmlrdGlRdCBydXRtJm91bWw7bnN0ZXI8L2E+PC9icj4KCQkqIDxhIGhyZWY9IndwX3NvbHV0aW9uc25vdGNvZGUvP3BhZ2VfaWQ9NDQ2Ij5RdFNjcm9iYmxlcjwvYT4tcG9ydCB0byBRdDU8L2JyPgoJCSogPGEgaHJlZj0id3Bfc29sdXRpb25zbm90Y29kZS8/cGFnZV9pZD0yMjciPmNvbnRhY3Qgc2hlZXQtY3JlYXRvcjwvYT4gKGJhc2gpIC8vIDxhIGhyZWY9IndwX3NvbHV0aW9uc25vdGNvZGUvP3BhZ2VfaWQ9NTc5Ij5kb0Vpcy5zaDwvYT4gKGNvbnZlcnQgYWxsIFRJRi1uZWdhdGl2ZXM7IGJhc2gpPC9icj4KCQk8L3A+CgkJPHAgc3R5bGU9ImNvbG9yOiB3aGl0ZTsgZm9udC1zaXplOiAxMnB0OyBmb250LWZhbWlseTogQXJpYWwsIHNhbnMtc2VyaWY7Ij4KCQlmbGlja3I6IHNlbGVjdGlvbiBvZiBzb21lIDxhIGhyZWY9Imh0dHBzOi8vd3d3LmZsaWNrci5jb20vcGhvdG9zL2V1ZGFpbW9uaWUvIj5waG90b3M8L2E+Cgk8L3A+Cgk8cCBzdHlsZT0iY29sb3I6IHdoaXRlOyBmb250LXNpemU6IDEycHQ7IGZvbnQtZmFtaWx5OiBBcmlhbCwgc2Fucy1zZXJpZjsiPgoJCVBob3RvIFNwaGVyZSBWaWV3ZXI6IDxhIGhyZWY9Imh0dHA6Ly9tYXJjZWxwZXRyaWNrLmJwbGFjZWQubmV0L1Bob3RvU3BoZXJlVmlld2VyLyI+aW50ZXJhY3RpdmUgcGFub3JhbWEtZXhhbXBsZXMgb2Ygc29tZSBldXJvcGVhbiB0b3duczwvYT4KCTwvcD4KCTwvYm9keT4KPC9odG1sPgo="
