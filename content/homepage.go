package content

// HomepageHTML is the homepage body in plain form. DecodeEmbedded(EncodedHomepage)
// must reproduce it byte for byte.
const HomepageHTML = `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">
<html>
   <head>
   <title>
         ~ marcelpetrick.it ~
      </title>
      <META name="description" content="marcelpetrick.it"><META name="keywords" content="marcelpetrick.it Marcel Petrick IT computer science">
   </head>

   <body style="background-color: black;">
	<p style="color: white; font-size: 12pt; font-family: Arial, sans-serif;">
		Homepage of Marcel Petrick.</br>
		-------------------------------------------------------------------------------------------------------------</br>
		Contact me via mail: add <b>mail</b> plus <b>@</b> plus <b>marcelpetrick.it</b></br>
		-------------------------------------------------------------------------------------------------------------</br>
	</p>
	<p style="color: white; font-size: 12pt; font-family: Arial, sans-serif;">
		my blog for stuff related to compute science, IT and (analogue) photography: <a href="wp_solutionsnotcode">"solutions not code"</a>
	</p>
	<p style="color: white; font-size: 12pt; font-family: Arial, sans-serif;">
		github-account: <a href="https://github.com/marcelpetrick">https://github.com/marcelpetrick</a>
	</p>
	<p style="color: white; font-size: 12pt; font-family: Arial, sans-serif;">
		Shortcuts to publicly accessible snippets (minority of them - most is hosted on github):</br>
		* Qt-ui-file-sorter: <a href="wp_solutionsnotcode/?page_id=121">riktiQt rutm&ouml;nster</a></br>
		* <a href="wp_solutionsnotcode/?page_id=446">QtScrobbler</a>-port to Qt5</br>
		* <a href="wp_solutionsnotcode/?page_id=227">contact sheet-creator</a> (bash) // <a href="wp_solutionsnotcode/?page_id=579">doEis.sh</a> (convert all TIF-negatives; bash)</br>
		</p>
		<p style="color: white; font-size: 12pt; font-family: Arial, sans-serif;">
		flickr: selection of some <a href="https://www.flickr.com/photos/eudaimonie/">photos</a>
	</p>
	<p style="color: white; font-size: 12pt; font-family: Arial, sans-serif;">
		Photo Sphere Viewer: <a href="http://marcelpetrick.bplaced.net/PhotoSphereViewer/">interactive panorama-examples of some european towns</a>
	</p>
	</body>
</html>
`
